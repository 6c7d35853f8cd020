package entitymodel

import (
	"errors"
)

var ErrNilEqualityTest = errors.New("equality test must not be nil")
var ErrNilMutation = errors.New("mutation action must not be nil")

// Base composes the four capability layers of a data-bound entity: change
// notification, rule-based validation with per-property error aggregation,
// transactional editing via deep-copy snapshots, and dirty-state tracking.
//
// A concrete entity type holds a *Base built with BuildBase, routes its
// setters through SetProperty / SetPropertyWith, and exposes whatever part of
// the Base surface its collaborators need. All dispatch is synchronous on the
// calling goroutine; a Base and its entity are owned by a single logical
// owner and are not safe for concurrent use.
//
// Every property write runs a fixed pipeline: implicit BeginEdit (when
// tracking is enabled) -> "changing" broadcast -> field mutation -> "changed"
// broadcast -> rule re-evaluation and error-map update -> dirty-flag
// recomputation. Validation therefore always sees the new value, and the
// dirty flag is computed only after validation has run.
type Base struct {
	guard  DisposalGuard
	logger Logger

	notifier  *notifier
	validator *errorAggregator
	session   *editSession
	tracker   *changeTracker

	// populated by options before the layers are wired
	snapshotter     Snapshotter
	rules           BoundRules
	knownNames      map[PropertyNameString]struct{}
	trackingAtStart bool
}

// BuildBase is a factory method for Base.
//
// A Snapshotter is required (via WithSnapshotter or WithJSONSnapshot) since
// the editing and tracking layers depend on it; everything else is optional.
func BuildBase(opts ...Option) (*Base, error) {
	b := &Base{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	if b.snapshotter == nil {
		return nil, ErrNilSnapshotter
	}

	b.notifier = newNotifier(&b.guard, b.logger)
	b.notifier.knownNames = b.knownNames
	b.validator = newErrorAggregator(&b.guard, b.notifier, b.rules)
	b.session = newEditSession(&b.guard, b.logger, b.snapshotter)
	b.tracker = newChangeTracker(&b.guard, b.notifier, b.session, b.logger)
	b.tracker.trackingEnabled = b.trackingAtStart

	// hook registration order carries the pipeline ordering invariant:
	// tracking before the "changing" broadcast, validation before tracking
	// after the "changed" broadcast
	b.notifier.registerBeforeChange(b.tracker.handleChanging)
	b.notifier.registerAfterChange(b.validator.handleChanged)
	b.notifier.registerAfterChange(b.tracker.handleChanged)

	return b, nil
}

/***** change notification *****/

// NotifyPropertyChanging broadcasts each name individually, in order, to all
// current subscribers of the "changing" stream.
func (b *Base) NotifyPropertyChanging(names ...PropertyNameString) error {
	return b.notifier.notifyChanging(names...)
}

// NotifyPropertyChanged broadcasts each name individually, in order, to all
// current subscribers of the "changed" stream, then runs validation and
// dirty-state recomputation for each name.
func (b *Base) NotifyPropertyChanged(names ...PropertyNameString) error {
	return b.notifier.notifyChanged(names...)
}

// OnPropertyChanging subscribes to the "changing" stream. The stream is hot:
// emissions before the subscription are not replayed.
func (b *Base) OnPropertyChanging(fn func(PropertyNameString)) (Subscription, error) {
	return b.notifier.onChanging(fn)
}

// OnPropertyChanged subscribes to the "changed" stream. The stream is hot:
// emissions before the subscription are not replayed.
func (b *Base) OnPropertyChanged(fn func(PropertyNameString)) (Subscription, error) {
	return b.notifier.onChanged(fn)
}

// SetProperty compares the field's current value to newValue using value
// equality; when equal it is a no-op reporting false. Otherwise it broadcasts
// "changing", mutates the field, broadcasts "changed", and reports true.
// Additional names make the changing/changed broadcasts fire for every name
// on the single mutation, for properties whose value feeds computed ones.
func SetProperty[T comparable](
	b *Base,
	field *T,
	newValue T,
	name PropertyNameString,
	more ...PropertyNameString,
) (bool, error) {

	if err := b.guard.Check(); err != nil {
		return false, err
	}

	names := append([]PropertyNameString{name}, more...)

	return setNotified(b.notifier, field, newValue, names...)
}

// SetPropertyWith is the overload of SetProperty for computed or multi-field
// properties: an explicit equality test and a mutation action replace the
// direct field reference. When equal reports true nothing happens and false
// is returned; otherwise changing/changed fire for every name around the
// mutation.
func SetPropertyWith(
	b *Base,
	equal func() bool,
	mutate func(),
	name PropertyNameString,
	more ...PropertyNameString,
) (bool, error) {

	if err := b.guard.Check(); err != nil {
		return false, err
	}

	if equal == nil {
		return false, ErrNilEqualityTest
	}

	if mutate == nil {
		return false, ErrNilMutation
	}

	if equal() {
		return false, nil
	}

	names := append([]PropertyNameString{name}, more...)

	if err := b.notifier.notifyChanging(names...); err != nil {
		return false, err
	}

	mutate()

	if err := b.notifier.notifyChanged(names...); err != nil {
		return false, err
	}

	return true, nil
}

func setNotified[T comparable](n *notifier, field *T, newValue T, names ...PropertyNameString) (bool, error) {
	if *field == newValue {
		return false, nil
	}

	if err := n.notifyChanging(names...); err != nil {
		return false, err
	}

	*field = newValue

	if err := n.notifyChanged(names...); err != nil {
		return false, err
	}

	return true, nil
}

/***** validation *****/

// HasErrors reports whether any property currently has rule violations.
func (b *Base) HasErrors() bool {
	return b.validator.hasErrors()
}

// Errors returns the current error messages for one property, empty when the
// property has no violations.
func (b *Base) Errors(name PropertyNameString) []ErrorMessageString {
	return b.validator.errorsFor(name)
}

// AllErrors returns the error messages of all properties, flattened.
func (b *Base) AllErrors() []ErrorMessageString {
	return b.validator.allErrors()
}

// Validate re-evaluates the bound rules scoped to the given property name,
// or for every property covered by the rules when the name is empty.
func (b *Base) Validate(name PropertyNameString) error {
	if err := b.guard.Check(); err != nil {
		return err
	}

	if b.validator.rules == nil {
		return nil
	}

	b.validator.validate(name)

	return nil
}

// OnErrorsChanged subscribes to the stream of property names whose error
// lists changed. Same hot/multicast discipline as the property streams.
func (b *Base) OnErrorsChanged(fn func(PropertyNameString)) (Subscription, error) {
	return b.validator.onErrorsChanged(fn)
}

/***** transactional editing *****/

// BeginEdit starts an edit session by capturing a deep snapshot of the
// entity's current field state. A no-op while a session is already open.
func (b *Base) BeginEdit() error {
	return b.session.beginEdit()
}

// CancelEdit restores the entity's fields from the snapshot taken at
// BeginEdit, discards it, and clears the dirty flag. A no-op (except for the
// dirty-flag reset) when no session is open.
func (b *Base) CancelEdit() error {
	if err := b.session.cancelEdit(); err != nil {
		return err
	}

	b.tracker.setChanged(false)

	return nil
}

// EndEdit commits the current field values by unconditionally discarding any
// snapshot, whether or not BeginEdit was ever called.
func (b *Base) EndEdit() error {
	return b.session.endEdit()
}

// IsEditing reports whether an edit session is currently open.
func (b *Base) IsEditing() bool {
	return b.session.isEditing()
}

// Clone constructs a fresh instance of the entity's type loaded with the
// current field state, independent of edit state.
func (b *Base) Clone() (any, error) {
	return b.session.clone()
}

// OnBeginEditing subscribes to the begin-editing lifecycle broadcast.
func (b *Base) OnBeginEditing(fn func()) (Subscription, error) {
	return b.session.onBeginEditing(fn)
}

// OnCancelEditing subscribes to the cancel-editing lifecycle broadcast.
func (b *Base) OnCancelEditing(fn func()) (Subscription, error) {
	return b.session.onCancelEditing(fn)
}

// OnEndEditing subscribes to the end-editing lifecycle broadcast.
func (b *Base) OnEndEditing(fn func()) (Subscription, error) {
	return b.session.onEndEditing(fn)
}

/***** change tracking *****/

// IsChangeTrackingEnabled reports whether automatic snapshot-per-change and
// dirty-flag recomputation are active.
func (b *Base) IsChangeTrackingEnabled() bool {
	return b.tracker.trackingEnabled
}

// SetChangeTrackingEnabled toggles change tracking. A plain toggle with no
// side effects beyond its own property-changed notification.
func (b *Base) SetChangeTrackingEnabled(value bool) error {
	return b.tracker.setTrackingEnabled(value)
}

// IsNew reports whether the entity has never been accepted. It initializes
// true; the only path to false is AcceptChanges.
func (b *Base) IsNew() bool {
	return b.tracker.isNew
}

// IsChanged reports whether the entity's current state differs structurally
// from the snapshot taken at the start of the edit session.
func (b *Base) IsChanged() bool {
	return b.tracker.isChanged
}

// AcceptChanges transitions a new entity to persisted and switches tracking
// on ("the entity was just saved for the first time"). For a persisted dirty
// entity it commits the open edit session and clears the dirty flag without
// touching the current field values.
func (b *Base) AcceptChanges() error {
	return b.tracker.acceptChanges()
}

// RejectChanges is an alias for CancelEdit.
func (b *Base) RejectChanges() error {
	return b.CancelEdit()
}

/***** lifecycle *****/

// Dispose releases all broadcast streams exactly once; any guarded operation
// afterwards fails with ErrDisposed. Subsequent calls are no-ops.
func (b *Base) Dispose() {
	b.guard.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (b *Base) IsDisposed() bool {
	return b.guard.IsDisposed()
}
