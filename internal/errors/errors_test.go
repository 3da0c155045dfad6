package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleError_Error(t *testing.T) {
	err := &CycleError{ErrorMsg: "Circular dependency detected in tasks"}
	assert.Equal(t, "Circular dependency detected in tasks", err.Error())

	err.Unresolved = []string{"A", "B"}
	assert.Equal(t, "Circular dependency detected in tasks: unresolved tasks [A, B]", err.Error())
}

func TestInvalidInputError_Error(t *testing.T) {
	assert.Equal(t, "At least one task is required", (&InvalidInputError{ErrorMsg: "At least one task is required"}).Error())
}
