package stats

import (
	"fmt"
	"time"
)

// Daily counter keys incremented by the activity consumer and read by the
// dashboard. One key per day; they expire after counterTTL.
const (
	postsCounterPrefix    = "board:stats:posts:"
	commentsCounterPrefix = "board:stats:comments:"

	// CounterTTL keeps a couple of days of counters around for debugging.
	CounterTTL = 48 * time.Hour
)

// PostsCounterKey returns the daily posts counter key for a point in time.
func PostsCounterKey(t time.Time) string {
	return fmt.Sprintf("%s%s", postsCounterPrefix, t.Format("2006-01-02"))
}

// CommentsCounterKey returns the daily comments counter key.
func CommentsCounterKey(t time.Time) string {
	return fmt.Sprintf("%s%s", commentsCounterPrefix, t.Format("2006-01-02"))
}
