package entitymodel

import (
	"errors"
)

var ErrNilSnapshotter = errors.New("snapshotter must not be nil")

// editSession is the transactional-editing layer of the model.
//
// It is a two-state machine: Clean (no snapshot) and Editing (snapshot held).
// BeginEdit captures a deep copy of the entity's field state as the original,
// CancelEdit restores from it, EndEdit commits by discarding it. The three
// lifecycle broadcasts follow the same hot/multicast discipline as the
// property-change streams.
type editSession struct {
	guard       *DisposalGuard
	logger      Logger
	snapshotter Snapshotter

	// original holds the snapshot while Editing, nil while Clean
	original any

	beginEditing  *Signal[struct{}]
	cancelEditing *Signal[struct{}]
	endEditing    *Signal[struct{}]
}

func newEditSession(guard *DisposalGuard, logger Logger, snapshotter Snapshotter) *editSession {
	s := &editSession{
		guard:         guard,
		logger:        logger,
		snapshotter:   snapshotter,
		beginEditing:  NewSignal[struct{}](),
		cancelEditing: NewSignal[struct{}](),
		endEditing:    NewSignal[struct{}](),
	}

	guard.OnDispose(s.beginEditing.close)
	guard.OnDispose(s.cancelEditing.close)
	guard.OnDispose(s.endEditing.close)

	return s
}

// beginEdit captures a snapshot and broadcasts begin-editing.
// A re-entrant call while already Editing is a no-op and keeps the original
// snapshot.
func (s *editSession) beginEdit() error {
	if err := s.guard.Check(); err != nil {
		return err
	}

	if s.original != nil {
		return nil
	}

	snapshot, err := s.snapshotter.Snapshot()
	if err != nil {
		return errors.Join(errors.New("beginning edit failed"), err)
	}

	s.original = snapshot
	s.debug("edit session started")
	s.beginEditing.emit(struct{}{})

	return nil
}

// cancelEdit restores the entity's fields from the snapshot, discards it, and
// broadcasts cancel-editing. A no-op while Clean.
func (s *editSession) cancelEdit() error {
	if err := s.guard.Check(); err != nil {
		return err
	}

	if s.original == nil {
		return nil
	}

	if err := s.snapshotter.Restore(s.original); err != nil {
		return errors.Join(errors.New("cancelling edit failed"), err)
	}

	s.original = nil
	s.debug("edit session cancelled")
	s.cancelEditing.emit(struct{}{})

	return nil
}

// endEdit commits whatever the current field values are by unconditionally
// discarding any snapshot, and broadcasts end-editing.
func (s *editSession) endEdit() error {
	if err := s.guard.Check(); err != nil {
		return err
	}

	s.original = nil
	s.debug("edit session ended")
	s.endEditing.emit(struct{}{})

	return nil
}

func (s *editSession) isEditing() bool {
	return s.original != nil
}

// clone duplicates the entity, independent of edit state.
func (s *editSession) clone() (any, error) {
	if err := s.guard.Check(); err != nil {
		return nil, err
	}

	return s.snapshotter.Clone()
}

func (s *editSession) onBeginEditing(fn func()) (Subscription, error) {
	return s.subscribe(s.beginEditing, fn)
}

func (s *editSession) onCancelEditing(fn func()) (Subscription, error) {
	return s.subscribe(s.cancelEditing, fn)
}

func (s *editSession) onEndEditing(fn func()) (Subscription, error) {
	return s.subscribe(s.endEditing, fn)
}

func (s *editSession) subscribe(signal *Signal[struct{}], fn func()) (Subscription, error) {
	if err := s.guard.Check(); err != nil {
		return Subscription{}, err
	}

	return signal.Subscribe(func(struct{}) { fn() }), nil
}

func (s *editSession) debug(msg string) {
	if s.logger != nil {
		s.logger.Debug(msg)
	}
}
