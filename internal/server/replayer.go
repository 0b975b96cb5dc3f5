package server

import (
	"context"

	"github.com/preston-bernstein/scoreboard-service/internal/replay"
)

// Replayer defines the minimal replay behavior needed by the server.
type Replayer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() replay.Status
}
