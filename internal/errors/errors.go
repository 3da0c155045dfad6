package errors

import (
	"fmt"
	"strings"
)

type BadRequestError struct {
	ErrorMsg string
}

func (m *BadRequestError) Error() string {
	return m.ErrorMsg
}

// InvalidInputError is returned when the task list cannot be ordered because
// it is malformed, independent of its dependency structure.
type InvalidInputError struct {
	ErrorMsg string
}

func (m *InvalidInputError) Error() string {
	return m.ErrorMsg
}

// CycleError is returned when no total order exists. Unresolved lists the
// nodes that never reached zero in-degree; it is diagnostic only and is not
// a cycle path.
type CycleError struct {
	ErrorMsg   string
	Unresolved []string
}

func (m *CycleError) Error() string {
	if len(m.Unresolved) == 0 {
		return m.ErrorMsg
	}
	return fmt.Sprintf("%s: unresolved tasks [%s]", m.ErrorMsg, strings.Join(m.Unresolved, ", "))
}
