package entitymodel

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var ErrNilSnapshotTarget = errors.New("snapshot target must not be nil")
var ErrSnapshotTargetNotPointer = errors.New("snapshot target must be a non-nil pointer to a struct")
var ErrSnapshotTypeMismatch = errors.New("snapshot does not match the target type")
var ErrNilLoadState = errors.New("load state operation must not be nil")
var ErrNilEqualState = errors.New("equal state operation must not be nil")

// Snapshotter supplies the model with the operations every concrete entity
// type must support for transactional editing: capturing a deep copy of the
// current field state, restoring from such a copy, testing structural
// equality against it, and duplicating the entity.
//
// Structural equality is deliberately part of this contract. A default based
// on pointer identity would report every edited entity as permanently dirty,
// so the model requires genuine field-state equality from its Snapshotter.
type Snapshotter interface {
	// Snapshot captures a deep copy of the target's current field state.
	Snapshot() (any, error)

	// Restore loads the target's fields from a previously captured snapshot.
	Restore(snapshot any) error

	// Equal reports whether the target's current field state is structurally
	// equal to the snapshot.
	Equal(snapshot any) (bool, error)

	// Clone constructs a fresh instance of the target's type loaded with the
	// target's current field state.
	Clone() (any, error)
}

// JSONSnapshotter implements Snapshotter by round-tripping the target through
// JSON. Snapshots are the serialized field state, restore unmarshals back into
// the target, and equality compares the serialized forms, which is structural
// by construction.
//
// Only state reachable through JSON serialization is covered; entities with
// unexported or otherwise unserializable state need their own Snapshotter,
// for example one built with BuildFuncSnapshotter.
type JSONSnapshotter struct {
	target any
	codec  jsoniter.API
}

// BuildJSONSnapshotter is a factory method for JSONSnapshotter.
//
// The target must be a non-nil pointer to a struct, typically the entity
// embedding the model Base.
func BuildJSONSnapshotter(target any) (*JSONSnapshotter, error) {
	if target == nil {
		return nil, ErrNilSnapshotTarget
	}

	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return nil, ErrSnapshotTargetNotPointer
	}

	return &JSONSnapshotter{
		target: target,
		codec:  jsoniter.ConfigCompatibleWithStandardLibrary,
	}, nil
}

// Snapshot captures the target's current field state as serialized JSON.
func (s *JSONSnapshotter) Snapshot() (any, error) {
	data, err := s.codec.Marshal(s.target)
	if err != nil {
		return nil, errors.Join(errors.New("capturing snapshot failed"), err)
	}

	return json.RawMessage(data), nil
}

// Restore loads the target's fields from a snapshot captured by Snapshot.
func (s *JSONSnapshotter) Restore(snapshot any) error {
	data, ok := snapshot.(json.RawMessage)
	if !ok {
		return ErrSnapshotTypeMismatch
	}

	if err := s.codec.Unmarshal(data, s.target); err != nil {
		return errors.Join(errors.New("restoring snapshot failed"), err)
	}

	return nil
}

// Equal reports whether the target's current field state serializes to the
// same JSON as the snapshot.
func (s *JSONSnapshotter) Equal(snapshot any) (bool, error) {
	data, ok := snapshot.(json.RawMessage)
	if !ok {
		return false, ErrSnapshotTypeMismatch
	}

	current, err := s.codec.Marshal(s.target)
	if err != nil {
		return false, errors.Join(errors.New("comparing snapshot failed"), err)
	}

	return bytes.Equal(current, data), nil
}

// Clone constructs a fresh instance of the target's type loaded with the
// target's current field state, returned as a pointer of the same type.
func (s *JSONSnapshotter) Clone() (any, error) {
	data, err := s.codec.Marshal(s.target)
	if err != nil {
		return nil, errors.Join(errors.New("cloning entity failed"), err)
	}

	fresh := reflect.New(reflect.TypeOf(s.target).Elem()).Interface()
	if err := s.codec.Unmarshal(data, fresh); err != nil {
		return nil, errors.Join(errors.New("cloning entity failed"), err)
	}

	return fresh, nil
}

type funcSnapshotter[T any] struct {
	target     *T
	loadState  func(into *T, from *T)
	equalState func(a *T, b *T) bool
}

// BuildFuncSnapshotter is a factory method for a Snapshotter built directly
// from the operations a concrete entity type supplies: loadState copies all
// field state from one instance into another, equalState tests structural
// equality of two instances. Fresh instances are zero values of T.
func BuildFuncSnapshotter[T any](
	target *T,
	loadState func(into *T, from *T),
	equalState func(a *T, b *T) bool,
) (Snapshotter, error) {

	if target == nil {
		return nil, ErrNilSnapshotTarget
	}

	if loadState == nil {
		return nil, ErrNilLoadState
	}

	if equalState == nil {
		return nil, ErrNilEqualState
	}

	return &funcSnapshotter[T]{
		target:     target,
		loadState:  loadState,
		equalState: equalState,
	}, nil
}

func (s *funcSnapshotter[T]) Snapshot() (any, error) {
	fresh := new(T)
	s.loadState(fresh, s.target)

	return fresh, nil
}

func (s *funcSnapshotter[T]) Restore(snapshot any) error {
	original, ok := snapshot.(*T)
	if !ok {
		return ErrSnapshotTypeMismatch
	}

	s.loadState(s.target, original)

	return nil
}

func (s *funcSnapshotter[T]) Equal(snapshot any) (bool, error) {
	original, ok := snapshot.(*T)
	if !ok {
		return false, ErrSnapshotTypeMismatch
	}

	return s.equalState(s.target, original), nil
}

func (s *funcSnapshotter[T]) Clone() (any, error) {
	return s.Snapshot()
}
