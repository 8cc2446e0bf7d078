package interfaces

import (
	"context"
	"encoding/json"
)

// FrameCache persists raw call payloads between CLI invocations so repeated
// fetches do not re-drive the R runtime.
type FrameCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, payload []byte) error
	Close() error
}
