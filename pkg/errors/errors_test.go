package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingParameterErrorNamesInputs(t *testing.T) {
	t.Parallel()

	err := NewMissingParameterError("model-path")
	require.EqualError(t, err, "input 'model-path' is required")

	err = NewMissingParameterError("model-path", "model-type")
	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"model-path", "model-type"}, missing.Names)
	require.Contains(t, err.Error(), "model-path, model-type")
}

func TestResourceNotFoundErrorDescribesScope(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 3")

	err := NewResourceGroupNotFoundError("rg-ml", underlying)
	require.EqualError(t, err, "resource group 'rg-ml' does not exist")
	require.True(t, stdErrors.Is(err, underlying))

	err = NewWorkspaceNotFoundError("ws-prod", "rg-ml", underlying)
	var notFound *ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, KindWorkspace, notFound.Kind)
	require.EqualError(t, err, "workspace 'ws-prod' does not exist in resource group 'rg-ml'")
}

func TestRegistrationErrorNamesModelAndVersion(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 1")
	err := NewRegistrationError("resnet", "3", "ws-prod", underlying)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	require.Contains(t, err.Error(), "'resnet'")
	require.Contains(t, err.Error(), "'3'")
	require.True(t, stdErrors.Is(err, underlying))
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("action.yml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "action.yml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "action.yml:12")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var missing *MissingParameterError
	var notFound *ResourceNotFoundError
	var regErr *RegistrationError

	require.Empty(t, missing.Error())
	require.Empty(t, notFound.Error())
	require.Nil(t, notFound.Unwrap())
	require.Empty(t, regErr.Error())
	require.Nil(t, regErr.Unwrap())
}
