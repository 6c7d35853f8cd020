package entitymodel

import (
	"errors"
)

// PropertyNameString is a type alias for string, naming a settable member of an entity.
// It is the correlation key across all layers of the model.
type PropertyNameString = string

// ErrorMessageString is a type alias for string, carrying the error payload of a violated Rule.
type ErrorMessageString = string

var ErrDisposed = errors.New("entity model was already disposed")

// Control property names raised by the model itself. They flow through the
// same changed broadcast as entity members but are excluded from implicit
// snapshotting, re-validation, and dirty recomputation.
const (
	PropertyHasErrors               PropertyNameString = "HasErrors"
	PropertyIsChanged               PropertyNameString = "IsChanged"
	PropertyIsNew                   PropertyNameString = "IsNew"
	PropertyIsChangeTrackingEnabled PropertyNameString = "IsChangeTrackingEnabled"
)

func isControlProperty(name PropertyNameString) bool {
	switch name {
	case PropertyHasErrors, PropertyIsChanged, PropertyIsNew, PropertyIsChangeTrackingEnabled:
		return true
	default:
		return false
	}
}
