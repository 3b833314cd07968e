package telemetry

import (
	"context"
)

const (
	telemeterContextKey ctxKey = iota
)

type ctxKey byte

// ContextWithTelemeter returns a new context carrying the given telemeter.
func ContextWithTelemeter(ctx context.Context, tlm *Telemeter) context.Context {
	return context.WithValue(ctx, telemeterContextKey, tlm)
}

// TelemeterFromContext returns the telemeter stored in the context.
// An empty Telemeter, which runs functions without collecting anything, is returned if there is none.
func TelemeterFromContext(ctx context.Context) *Telemeter {
	if val := ctx.Value(telemeterContextKey); val != nil {
		if val, ok := val.(*Telemeter); ok {
			return val
		}
	}

	return new(Telemeter)
}
