// Package helper provides shared arrangement helpers for tests.
package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// GivenUniqueID supplies a fresh time-ordered ID for a test entity.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id
}
