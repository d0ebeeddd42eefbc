package model

// Stats aggregates the figures shown on the admin dashboard.
type Stats struct {
	TotalUsers          int64
	BlockedUsers        int64
	ActiveUsers         int64 // currently connected to the realtime channel
	RecentlyActiveUsers int64 // logged in within the last 24h
	WeeklyActiveUsers   int64 // logged in within the last 7 days
	TotalPosts          int64
	TotalComments       int64
	PostsToday          int64
	CommentsToday       int64
}
