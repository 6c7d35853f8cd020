package entitymodel

import (
	"errors"
	"reflect"
)

var ErrNilRules = errors.New("bound rules must not be nil")

// Option defines a functional option for configuring a Base.
type Option func(*Base) error

// WithSnapshotter sets the Snapshotter supplying deep copy, restore,
// structural equality, and cloning for the entity.
func WithSnapshotter(snapshotter Snapshotter) Option {
	return func(b *Base) error {
		if snapshotter == nil {
			return ErrNilSnapshotter
		}

		b.snapshotter = snapshotter

		return nil
	}
}

// WithJSONSnapshot sets a JSONSnapshotter over the given entity and registers
// the entity's exported field names as the known property names for the
// notifier's diagnostic check. The target must be a non-nil pointer to the
// struct embedding the Base.
func WithJSONSnapshot(target any) Option {
	return func(b *Base) error {
		snapshotter, err := BuildJSONSnapshotter(target)
		if err != nil {
			return err
		}

		b.snapshotter = snapshotter

		for _, name := range exportedFieldNames(target) {
			b.registerKnownName(name)
		}

		return nil
	}
}

// WithRules binds the per-type rule collection the validation layer
// re-evaluates on every property change.
func WithRules(rules BoundRules) Option {
	return func(b *Base) error {
		if rules == nil {
			return ErrNilRules
		}

		b.rules = rules

		return nil
	}
}

// WithLogger sets the logger receiving diagnostic warnings (unknown property
// names) and edit-lifecycle debug messages. Without a logger the model stays
// silent.
func WithLogger(logger Logger) Option {
	return func(b *Base) error {
		b.logger = logger
		return nil
	}
}

// WithPropertyNames registers additional known property names for the
// notifier's diagnostic check, for computed properties that are not struct
// fields of the entity.
func WithPropertyNames(names ...PropertyNameString) Option {
	return func(b *Base) error {
		for _, name := range names {
			if name == "" {
				return ErrEmptyPropertyName
			}

			b.registerKnownName(name)
		}

		return nil
	}
}

// WithChangeTracking sets the initial state of the change-tracking toggle.
// Tracking starts disabled by default and is switched on by the first
// AcceptChanges of a new entity.
func WithChangeTracking(enabled bool) Option {
	return func(b *Base) error {
		b.trackingAtStart = enabled
		return nil
	}
}

func (b *Base) registerKnownName(name PropertyNameString) {
	if b.knownNames == nil {
		b.knownNames = make(map[PropertyNameString]struct{})
	}

	b.knownNames[name] = struct{}{}
}

func exportedFieldNames(target any) []PropertyNameString {
	targetType := reflect.TypeOf(target)
	if targetType.Kind() == reflect.Pointer {
		targetType = targetType.Elem()
	}

	if targetType.Kind() != reflect.Struct {
		return nil
	}

	var names []PropertyNameString

	for i := 0; i < targetType.NumField(); i++ {
		field := targetType.Field(i)
		if field.IsExported() {
			names = append(names, field.Name)
		}
	}

	return names
}
