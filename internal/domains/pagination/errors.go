package pagedomain

import (
	"errors"
	"fmt"
)

var (
	ErrNilRegistry      = errors.New("registry is nil")
	ErrMissingOption    = errors.New("missing required option")
	ErrUnknownOperation = errors.New("operation does not exist")
	ErrInvalidArguments = errors.New("invalid pagination arguments")
	ErrUnexpectedResult = errors.New("unexpected operation result")
)

// Role names the sub-operation an orchestrator delegates to.
type Role string

const (
	RoleFind  Role = "find"
	RoleCount Role = "count"
)

// ConfigurationError is returned at construction time when the registry or
// the options cannot back a pagination operation.
type ConfigurationError struct {
	Option    string
	Operation string
	Err       error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Operation != "":
		return fmt.Sprintf("pagination: option %q: registry does not have operation with name %q: %v", e.Option, e.Operation, e.Err)
	case e.Option != "":
		return fmt.Sprintf("pagination: should have option %q: %v", e.Option, e.Err)
	default:
		return fmt.Sprintf("pagination: %v", e.Err)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UpstreamOperationError tags a failure of the find or count operation with
// the role and name of the operation that produced it.
type UpstreamOperationError struct {
	Role      Role
	Operation string
	Err       error
}

func (e *UpstreamOperationError) Error() string {
	return fmt.Sprintf("pagination: %s operation %q failed: %v", e.Role, e.Operation, e.Err)
}

func (e *UpstreamOperationError) Unwrap() error {
	return e.Err
}
