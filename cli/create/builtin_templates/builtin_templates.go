// Package builtin_templates provides project templates shipped with forge.
package builtin_templates

import (
	"embed"
)

//go:embed all:templates
var TemplatesFs embed.FS

// Names contains built-in template names.
var Names = []string{"dataeng"}
