package inputs

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	regerrors "github.com/alexisbeaulieu97/register-model/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator, reporting
// fields by their input name rather than the Go field name.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("input"); name != "" {
				return name
			}
			return field.Name
		})
		validateInst = v
	})

	return validateInst
}

// Params holds the resolved action inputs. Values are never modified after
// resolution.
type Params struct {
	ResourceGroup string `input:"resource-group" validate:"required"`
	WorkspaceName string `input:"workspace-name" validate:"required"`
	ModelName     string `input:"model-name" validate:"required"`
	ModelVersion  string `input:"model-version" validate:"required"`
	ModelPath     string `input:"model-path" validate:"required"`
	ModelType     string `input:"model-type" validate:"required"`
}

// Validate returns a MissingParameterError naming every empty input.
func (p Params) Validate() error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return regerrors.NewMissingParameterError(missing...)
}

// Fields returns the inputs as log fields.
func (p Params) Fields() map[string]any {
	return map[string]any{
		"resource_group": p.ResourceGroup,
		"workspace":      p.WorkspaceName,
		"model":          p.ModelName,
		"model_version":  p.ModelVersion,
	}
}

// InputSource supplies action inputs by name, already trimmed.
type InputSource interface {
	GetInput(name string) string
}

// Resolver reads inputs from command-line flags and the runner's action
// inputs, with flags taking precedence.
type Resolver struct {
	v    *viper.Viper
	src  InputSource
	defs []Definition
}

// NewResolver returns a Resolver for defs backed by src.
func NewResolver(defs []Definition, src InputSource) *Resolver {
	v := viper.New()
	for _, def := range defs {
		if def.Default != "" {
			v.SetDefault(def.Name, def.Default)
		}
	}
	return &Resolver{v: v, src: src, defs: defs}
}

// BindFlags registers one string flag per definition on flags and binds it.
func (r *Resolver) BindFlags(flags *pflag.FlagSet) error {
	for _, def := range r.defs {
		flags.String(def.Name, "", def.Description)
		if err := r.v.BindPFlag(def.Name, flags.Lookup(def.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Read returns the inputs as supplied, without validation. Surrounding
// whitespace is discarded, so blank values read as empty.
func (r *Resolver) Read() (Params, error) {
	supplied := make(map[string]any, len(r.defs))
	for _, def := range r.defs {
		if value := r.src.GetInput(def.Name); value != "" {
			supplied[def.Name] = value
		}
	}
	// Merged values sit below changed flags in viper's precedence.
	if err := r.v.MergeConfigMap(supplied); err != nil {
		return Params{}, err
	}

	return Params{
		ResourceGroup: r.get(NameResourceGroup),
		WorkspaceName: r.get(NameWorkspaceName),
		ModelName:     r.get(NameModelName),
		ModelVersion:  r.get(NameModelVersion),
		ModelPath:     r.get(NameModelPath),
		ModelType:     r.get(NameModelType),
	}, nil
}

func (r *Resolver) get(name string) string {
	return strings.TrimSpace(r.v.GetString(name))
}
