package inputs

import (
	"fmt"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	regerrors "github.com/alexisbeaulieu97/register-model/pkg/errors"
)

// Input names declared in action.yml.
const (
	NameResourceGroup = "resource-group"
	NameWorkspaceName = "workspace-name"
	NameModelName     = "model-name"
	NameModelVersion  = "model-version"
	NameModelPath     = "model-path"
	NameModelType     = "model-type"
)

// Names lists every input in the order the workflow consumes them.
var Names = []string{
	NameResourceGroup,
	NameWorkspaceName,
	NameModelName,
	NameModelVersion,
	NameModelPath,
	NameModelType,
}

const metadataPath = "action.yml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Definition is one entry of the action metadata "inputs" mapping.
type Definition struct {
	Name        string `yaml:"-"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

type actionMetadata struct {
	Name   string    `yaml:"name"`
	Inputs yaml.Node `yaml:"inputs"`
}

// ParseDefinitions reads input declarations from action metadata, keeping
// their declaration order. Every input in Names must be declared.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var meta actionMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, regerrors.NewParseError(metadataPath, extractLine(err), err)
	}

	if meta.Inputs.Kind != yaml.MappingNode {
		return nil, regerrors.NewParseError(metadataPath, meta.Inputs.Line, fmt.Errorf("inputs must be a mapping"))
	}

	defs := make([]Definition, 0, len(meta.Inputs.Content)/2)
	for i := 0; i+1 < len(meta.Inputs.Content); i += 2 {
		key, value := meta.Inputs.Content[i], meta.Inputs.Content[i+1]

		var def Definition
		if err := value.Decode(&def); err != nil {
			return nil, regerrors.NewParseError(metadataPath, value.Line, err)
		}
		def.Name = key.Value
		defs = append(defs, def)
	}

	for _, name := range Names {
		if !slices.ContainsFunc(defs, func(d Definition) bool { return d.Name == name }) {
			return nil, regerrors.NewParseError(metadataPath, meta.Inputs.Line, fmt.Errorf("input %q is not declared", name))
		}
	}

	return defs, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
