package errors

import (
	"fmt"
	"strings"
)

// MissingParameterError reports required inputs that were absent or empty.
type MissingParameterError struct {
	Names []string
}

// NewMissingParameterError constructs a MissingParameterError for the given input names.
func NewMissingParameterError(names ...string) error {
	return &MissingParameterError{Names: names}
}

func (e *MissingParameterError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Names) == 1 {
		return fmt.Sprintf("input '%s' is required", e.Names[0])
	}
	return fmt.Sprintf("inputs are required: %s", strings.Join(e.Names, ", "))
}

// Resource kinds reported by ResourceNotFoundError.
const (
	KindResourceGroup = "resource group"
	KindWorkspace     = "workspace"
)

// ResourceNotFoundError indicates a prerequisite Azure resource could not be described.
type ResourceNotFoundError struct {
	Kind  string
	Name  string
	Scope string
	Err   error
}

// NewResourceGroupNotFoundError constructs a ResourceNotFoundError for a resource group.
func NewResourceGroupNotFoundError(name string, err error) error {
	return &ResourceNotFoundError{Kind: KindResourceGroup, Name: name, Err: err}
}

// NewWorkspaceNotFoundError constructs a ResourceNotFoundError for a workspace scoped to a resource group.
func NewWorkspaceNotFoundError(name, resourceGroup string, err error) error {
	return &ResourceNotFoundError{Kind: KindWorkspace, Name: name, Scope: resourceGroup, Err: err}
}

func (e *ResourceNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Scope != "" {
		return fmt.Sprintf("%s '%s' does not exist in resource group '%s'", e.Kind, e.Name, e.Scope)
	}
	return fmt.Sprintf("%s '%s' does not exist", e.Kind, e.Name)
}

// Unwrap exposes the underlying error.
func (e *ResourceNotFoundError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistrationError represents a failed create-model invocation.
type RegistrationError struct {
	Model     string
	Version   string
	Workspace string
	Err       error
}

// NewRegistrationError constructs a RegistrationError.
func NewRegistrationError(model, version, workspace string, err error) error {
	return &RegistrationError{Model: model, Version: version, Workspace: workspace, Err: err}
}

func (e *RegistrationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("model '%s' with version '%s' could not be registered in workspace '%s'", e.Model, e.Version, e.Workspace)
}

// Unwrap exposes the root error.
func (e *RegistrationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a malformed action metadata document.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
