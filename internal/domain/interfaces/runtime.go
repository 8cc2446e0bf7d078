package interfaces

import (
	"context"
	"encoding/json"

	domaintypes "coschooldata/internal/domain/types"
)

// Runtime is how we invoke functions of the underlying R data package, all
// with context. Positional arguments are forwarded in order; named arguments
// become named parameters of the foreign call.
type Runtime interface {
	// CallFrame applies fn and decodes the returned table.
	CallFrame(
		ctx context.Context,
		fn string,
		args []any,
		named map[string]any,
	) (*domaintypes.Frame, error)

	// CallRaw applies fn and returns the undecoded result payload, for
	// callers that normalise heterogeneous record shapes themselves.
	CallRaw(
		ctx context.Context,
		fn string,
		args []any,
		named map[string]any,
	) (json.RawMessage, error)
}
