package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	// A cold schedule build fetches up to a week of scoreboards and a cold player
	// bundle makes three stats.nba calls; the write deadline has to outlast both.
	writeTimeout = 90 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
