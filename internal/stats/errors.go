package stats

import "errors"

var ErrAdminRequired = errors.New("admin role required")
