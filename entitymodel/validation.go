package entitymodel

// errorAggregator is the validation layer of the model.
//
// It re-evaluates the bound rules whenever a property-changed notification
// arrives, maintains the mapping of property name to error messages, and
// broadcasts which property's errors changed. Validation failures are data
// surfaced through hasErrors/errorsFor, never Go errors.
type errorAggregator struct {
	guard    *DisposalGuard
	notifier *notifier
	rules    BoundRules

	// lazily allocated on first access; entries are removed entirely once a
	// property clears all violations, so hasErrors is len(errors) > 0
	errors map[PropertyNameString][]ErrorMessageString

	errorsChanged *Signal[PropertyNameString]
}

func newErrorAggregator(guard *DisposalGuard, n *notifier, rules BoundRules) *errorAggregator {
	a := &errorAggregator{
		guard:         guard,
		notifier:      n,
		rules:         rules,
		errorsChanged: NewSignal[PropertyNameString](),
	}

	guard.OnDispose(a.errorsChanged.close)

	return a
}

// handleChanged is the afterChange hook of the validation layer. Control
// property notifications are ignored so the layer never re-enters itself
// through its own HasErrors broadcast.
func (a *errorAggregator) handleChanged(name PropertyNameString) {
	if a.rules == nil || isControlProperty(name) {
		return
	}

	a.validate(name)
}

// validate re-evaluates the rules scoped to the given property name, or every
// property name covered by the rules when the name is empty. After processing,
// a changed notification for HasErrors is always broadcast so subscribers
// bound to "do errors exist" refresh deterministically.
func (a *errorAggregator) validate(name PropertyNameString) {
	if name == "" {
		for _, ruleProperty := range a.rules.PropertyNames() {
			a.validateProperty(ruleProperty)
		}
	} else {
		a.validateProperty(name)
	}

	_ = a.notifier.notifyChanged(PropertyHasErrors)
}

func (a *errorAggregator) validateProperty(name PropertyNameString) {
	failures := a.rules.ApplyForProperty(name)
	currentErrors := a.ensureErrors()

	if len(failures) > 0 {
		currentErrors[name] = failures
		a.errorsChanged.emit(name)

		return
	}

	if _, hadErrors := currentErrors[name]; hadErrors {
		delete(currentErrors, name)
		a.errorsChanged.emit(name)
	}
}

func (a *errorAggregator) hasErrors() bool {
	return len(a.ensureErrors()) > 0
}

// errorsFor returns the current error messages for one property.
func (a *errorAggregator) errorsFor(name PropertyNameString) []ErrorMessageString {
	currentErrors := a.ensureErrors()

	messages := make([]ErrorMessageString, len(currentErrors[name]))
	copy(messages, currentErrors[name])

	return messages
}

// allErrors returns the concatenation of all property error lists, flattened
// in map iteration order.
func (a *errorAggregator) allErrors() []ErrorMessageString {
	var messages []ErrorMessageString

	for _, propertyErrors := range a.ensureErrors() {
		messages = append(messages, propertyErrors...)
	}

	return messages
}

func (a *errorAggregator) onErrorsChanged(fn func(PropertyNameString)) (Subscription, error) {
	if err := a.guard.Check(); err != nil {
		return Subscription{}, err
	}

	return a.errorsChanged.Subscribe(fn), nil
}

func (a *errorAggregator) ensureErrors() map[PropertyNameString][]ErrorMessageString {
	if a.errors == nil {
		a.errors = make(map[PropertyNameString][]ErrorMessageString)
	}

	return a.errors
}
