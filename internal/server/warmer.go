package server

import (
	"context"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/warmer"
)

// Warmer defines the minimal warmer behavior needed by the server.
type Warmer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() warmer.Status
}
