package entitymodel

// changeTracker is the dirty-state layer of the model.
//
// When tracking is enabled, every write to a tracked property implicitly
// begins an edit session before the mutation, so there is always a snapshot
// to diff and restore against, and recomputes the derived IsChanged flag by
// structural equality against that snapshot after validation has run. The
// IsNew flag distinguishes entities never accepted ("new") from persisted
// ones; AcceptChanges is the only transition out of new.
type changeTracker struct {
	guard    *DisposalGuard
	notifier *notifier
	session  *editSession
	logger   Logger

	trackingEnabled bool
	isNew           bool
	isChanged       bool
}

func newChangeTracker(guard *DisposalGuard, n *notifier, session *editSession, logger Logger) *changeTracker {
	return &changeTracker{
		guard:    guard,
		notifier: n,
		session:  session,
		logger:   logger,
		isNew:    true,
	}
}

// handleChanging is the beforeChange hook of the tracking layer: the first
// tracked write implicitly begins the edit session before the mutation.
func (t *changeTracker) handleChanging(name PropertyNameString) {
	if !t.trackingEnabled || isControlProperty(name) {
		return
	}

	if err := t.session.beginEdit(); err != nil && t.logger != nil {
		t.logger.Error("implicit begin edit failed", "property", name, "error", err)
	}
}

// handleChanged is the afterChange hook of the tracking layer, registered
// after the validation layer's so the dirty flag is recomputed only once
// validation has seen the new value.
func (t *changeTracker) handleChanged(name PropertyNameString) {
	if !t.trackingEnabled || isControlProperty(name) {
		return
	}

	if t.session.original == nil {
		t.setChanged(false)
		return
	}

	equal, err := t.session.snapshotter.Equal(t.session.original)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("recomputing dirty flag failed", "property", name, "error", err)
		}

		return
	}

	t.setChanged(!equal)
}

func (t *changeTracker) setTrackingEnabled(value bool) error {
	if err := t.guard.Check(); err != nil {
		return err
	}

	_, err := setNotified(t.notifier, &t.trackingEnabled, value, PropertyIsChangeTrackingEnabled)

	return err
}

// acceptChanges transitions a new entity to persisted and switches tracking
// on. For an already persisted dirty entity it commits the edit session and
// clears the dirty flag, keeping the current field values.
func (t *changeTracker) acceptChanges() error {
	if err := t.guard.Check(); err != nil {
		return err
	}

	if t.isNew {
		if _, err := setNotified(t.notifier, &t.isNew, false, PropertyIsNew); err != nil {
			return err
		}

		_, err := setNotified(t.notifier, &t.trackingEnabled, true, PropertyIsChangeTrackingEnabled)

		return err
	}

	if t.isChanged {
		if err := t.session.endEdit(); err != nil {
			return err
		}

		t.setChanged(false)
	}

	return nil
}

func (t *changeTracker) setChanged(value bool) {
	_, _ = setNotified(t.notifier, &t.isChanged, value, PropertyIsChanged)
}
