package dirinfo

import (
	"context"
	"sync"
)

type (
	// BeforeResolveFunc is invoked before each resolution, the returned context is propagated
	BeforeResolveFunc func(context.Context) (context.Context, error)

	// AfterResolveFunc is invoked after each resolution with the propagated context
	AfterResolveFunc func(context.Context) error
)

// callbacks
var (
	cbMu            sync.Mutex
	beforeResolveCB BeforeResolveFunc
	afterResolveCB  AfterResolveFunc
)

// BeforeResolveCB returns callback that will be invoked before each Local and S3 resolution
func BeforeResolveCB() BeforeResolveFunc {
	cbMu.Lock()
	defer cbMu.Unlock()
	return beforeResolveCB
}

// SetBeforeResolveCB sets callback that will be invoked before each Local and S3 resolution
func SetBeforeResolveCB(f BeforeResolveFunc) {
	cbMu.Lock()
	defer cbMu.Unlock()
	beforeResolveCB = f
}

// AfterResolveCB returns callback that will be invoked after each Local and S3 resolution
func AfterResolveCB() AfterResolveFunc {
	cbMu.Lock()
	defer cbMu.Unlock()
	return afterResolveCB
}

// SetAfterResolveCB sets callback that will be invoked after each Local and S3 resolution
func SetAfterResolveCB(f AfterResolveFunc) {
	cbMu.Lock()
	defer cbMu.Unlock()
	afterResolveCB = f
}

func invokeBeforeResolveCB(ctx context.Context) (context.Context, error) {
	cb := BeforeResolveCB()
	if cb == nil {
		return ctx, nil
	}
	return cb(ctx)
}

func invokeAfterResolveCB(ctx context.Context) error {
	cb := AfterResolveCB()
	if cb == nil {
		return nil
	}
	return cb(ctx)
}
