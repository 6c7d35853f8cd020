package entitymodel

// DisposalGuard provides exactly-once release of resources and guards all
// other components against post-disposal use.
//
// The zero value is ready to use.
type DisposalGuard struct {
	disposed bool
	releases []func()
}

// OnDispose registers a release hook to run on the first Dispose call.
// Hooks run in registration order. Registering after disposal runs the hook
// immediately since the release phase has already happened.
func (g *DisposalGuard) OnDispose(release func()) {
	if g.disposed {
		release()
		return
	}

	g.releases = append(g.releases, release)
}

// Dispose marks the guard disposed and runs all release hooks exactly once.
// Subsequent calls are no-ops.
func (g *DisposalGuard) Dispose() {
	if g.disposed {
		return
	}

	g.disposed = true

	for _, release := range g.releases {
		release()
	}

	g.releases = nil
}

// IsDisposed reports whether Dispose has been called.
func (g *DisposalGuard) IsDisposed() bool {
	return g.disposed
}

// Check returns ErrDisposed once the guard has been disposed, nil before.
// Every guarded operation of the model calls this before touching state.
func (g *DisposalGuard) Check() error {
	if g.disposed {
		return ErrDisposed
	}

	return nil
}
