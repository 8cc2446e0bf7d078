package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"coschooldata/internal/domain"
)

// CachedRuntime decorates a Runtime with payload caching. Hits skip the R
// subprocess entirely; misses and refreshes fall through and store the
// fresh payload. Cache failures degrade to a direct call rather than
// failing the operation.
type CachedRuntime struct {
	next    domain.Runtime
	cache   domain.FrameCache
	refresh bool
}

// NewCachedRuntime wraps next with cache. When refresh is set every call
// bypasses lookup but still stores its result.
func NewCachedRuntime(next domain.Runtime, cache domain.FrameCache, refresh bool) *CachedRuntime {
	return &CachedRuntime{next: next, cache: cache, refresh: refresh}
}

// CallRaw serves the payload from cache when fresh, otherwise forwards to
// the wrapped runtime and stores the result.
func (c *CachedRuntime) CallRaw(ctx context.Context, fn string, args []any, named map[string]any) (json.RawMessage, error) {
	key := Key(fn, args, named)
	if !c.refresh {
		payload, err := c.cache.Get(ctx, key)
		if err == nil {
			return payload, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			fmt.Fprintf(os.Stderr, "coschool: cache read failed, calling through: %v\n", err)
		}
	}
	payload, err := c.next.CallRaw(ctx, fn, args, named)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Put(ctx, key, payload); err != nil {
		fmt.Fprintf(os.Stderr, "coschool: cache write failed: %v\n", err)
	}
	return payload, nil
}

// CallFrame is CallRaw plus frame decoding.
func (c *CachedRuntime) CallFrame(ctx context.Context, fn string, args []any, named map[string]any) (*domain.Frame, error) {
	raw, err := c.CallRaw(ctx, fn, args, named)
	if err != nil {
		return nil, err
	}
	var frame domain.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("decode frame from %s: %w", fn, err)
	}
	return &frame, nil
}

var _ domain.Runtime = (*CachedRuntime)(nil)
