package encrypter

// Encrypter hashes and verifies user passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

// New creates a new Encrypter.
func New() Encrypter {
	return &implEncrypter{cost: DefaultCost}
}
