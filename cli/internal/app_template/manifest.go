package app_template

import (
	"fmt"
	"os"
	"regexp"

	"github.com/dataeng-forge/forge/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// DefaultManifestName is a file name of the template manifest.
	DefaultManifestName = "template.json"
)

// reservedManifestKeys are manifest keys with a fixed meaning. Any other
// scalar string key is a variable default without a prompt.
var reservedManifestKeys = map[string]bool{
	"description":       true,
	"vars":              true,
	"pre-hook":          true,
	"post-hook":         true,
	"include":           true,
	"follow-up-message": true,
}

// UserPrompt describes interactive prompt to get the value of variable from a user.
type UserPrompt struct {
	// Prompt is an input prompt for the variable.
	Prompt string
	// Name is a variable name to store a value to.
	Name string
	// Default is a default value.
	Default string
	// Re is a regular expression for the value validation.
	Re string
	// Choices is a fixed set of allowed values. If set, the value is
	// selected from the list instead of free-form input.
	Choices []string
}

// TemplateManifest is a manifest for project template.
type TemplateManifest struct {
	// Description is a template description.
	Description string
	// Vars is a set of variables, which values are to be
	// requested from a user.
	Vars []UserPrompt
	// PreHook is a path to the executable to run before template rendering.
	// Project path is passed as a first parameter.
	PreHook string `mapstructure:"pre-hook"`
	// PostHook is a path to the executable to run after template rendering.
	// Project path is passed as a first parameter.
	PostHook string `mapstructure:"post-hook"`
	// Include contains a list of files to keep after template rendering.
	Include []string
	// FollowUpMessage is printed after a successful project creation.
	FollowUpMessage string `mapstructure:"follow-up-message"`
	// Defaults contains variable defaults supplied as flat manifest keys.
	// These variables have no prompt of their own.
	Defaults map[string]string
}

func validateManifest(manifest *TemplateManifest) error {
	for _, varInfo := range manifest.Vars {
		if varInfo.Prompt == "" {
			return fmt.Errorf("missing user prompt")
		}
		if varInfo.Name == "" {
			return fmt.Errorf("missing variable name")
		}
		if varInfo.Re != "" {
			if _, err := regexp.Compile(varInfo.Re); err != nil {
				return fmt.Errorf("invalid regexp for %q variable: %s", varInfo.Name, err)
			}
		}
	}
	return nil
}

// DecodeManifest decodes raw manifest map into TemplateManifest.
// Flat scalar string keys outside of the reserved set become
// variable defaults.
func DecodeManifest(rawManifest map[string]interface{}) (TemplateManifest, error) {
	var templateManifest TemplateManifest
	if err := mapstructure.Decode(rawManifest, &templateManifest); err != nil {
		return templateManifest, fmt.Errorf("failed to decode template manifest: %s", err)
	}

	templateManifest.Defaults = make(map[string]string)
	for key, value := range rawManifest {
		if reservedManifestKeys[key] {
			continue
		}
		if strValue, ok := value.(string); ok {
			templateManifest.Defaults[key] = strValue
		}
	}

	if err := validateManifest(&templateManifest); err != nil {
		return templateManifest, fmt.Errorf("invalid manifest format: %s", err)
	}

	return templateManifest, nil
}

// LoadManifest loads template manifest from manifestPath.
func LoadManifest(manifestPath string) (TemplateManifest, error) {
	var templateManifest TemplateManifest
	if _, err := os.Stat(manifestPath); err != nil {
		return templateManifest, fmt.Errorf("failed to get access to manifest file: %s", err)
	}

	rawManifest, err := util.ParseJSON(manifestPath)
	if err != nil {
		return templateManifest, err
	}

	return DecodeManifest(rawManifest)
}
