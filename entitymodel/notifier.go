package entitymodel

// notifier is the change-notification engine of the model.
//
// It broadcasts "property changing" and "property changed" names through two
// hot Signal streams and runs ordered hook chains around the broadcasts. The
// hooks replace the deep virtual-override chain of classic data-binding base
// classes: higher layers (edit session, validation, change tracking) register
// callbacks in a fixed order instead of overriding notification methods.
type notifier struct {
	guard      *DisposalGuard
	logger     Logger
	knownNames map[PropertyNameString]struct{}
	changing   *Signal[PropertyNameString]
	changed    *Signal[PropertyNameString]

	// beforeChange hooks run before each "changing" broadcast,
	// afterChange hooks run after each "changed" broadcast,
	// both in registration order.
	beforeChange []func(PropertyNameString)
	afterChange  []func(PropertyNameString)
}

func newNotifier(guard *DisposalGuard, logger Logger) *notifier {
	n := &notifier{
		guard:    guard,
		logger:   logger,
		changing: NewSignal[PropertyNameString](),
		changed:  NewSignal[PropertyNameString](),
	}

	guard.OnDispose(n.changing.close)
	guard.OnDispose(n.changed.close)

	return n
}

func (n *notifier) registerBeforeChange(hook func(PropertyNameString)) {
	n.beforeChange = append(n.beforeChange, hook)
}

func (n *notifier) registerAfterChange(hook func(PropertyNameString)) {
	n.afterChange = append(n.afterChange, hook)
}

// notifyChanging broadcasts each name individually, in order, to all current
// subscribers of the "changing" stream, running the beforeChange hooks first.
func (n *notifier) notifyChanging(names ...PropertyNameString) error {
	if err := n.guard.Check(); err != nil {
		return err
	}

	for _, name := range names {
		n.warnUnknownName(name)

		for _, hook := range n.beforeChange {
			hook(name)
		}

		n.changing.emit(name)
	}

	return nil
}

// notifyChanged broadcasts each name individually, in order, to all current
// subscribers of the "changed" stream, then runs the afterChange hooks.
func (n *notifier) notifyChanged(names ...PropertyNameString) error {
	if err := n.guard.Check(); err != nil {
		return err
	}

	for _, name := range names {
		n.warnUnknownName(name)
		n.changed.emit(name)

		for _, hook := range n.afterChange {
			hook(name)
		}
	}

	return nil
}

func (n *notifier) onChanging(fn func(PropertyNameString)) (Subscription, error) {
	if err := n.guard.Check(); err != nil {
		return Subscription{}, err
	}

	return n.changing.Subscribe(fn), nil
}

func (n *notifier) onChanged(fn func(PropertyNameString)) (Subscription, error) {
	if err := n.guard.Check(); err != nil {
		return Subscription{}, err
	}

	return n.changed.Subscribe(fn), nil
}

// warnUnknownName is a non-fatal diagnostic: every property name raised
// through the notifier should correspond to an existing member of the entity.
// The check is skipped when no member names were registered.
func (n *notifier) warnUnknownName(name PropertyNameString) {
	if n.knownNames == nil || n.logger == nil || name == "" || isControlProperty(name) {
		return
	}

	if _, ok := n.knownNames[name]; !ok {
		n.logger.Warn("notified property name is not a known member of the entity", "property", name)
	}
}
