// Package templates provides template engine interface and implementations.
package templates

import "github.com/dataeng-forge/forge/cli/internal/templates/engines"

// TemplateEngine is an interface that is implemented by template engines.
type TemplateEngine interface {
	// RenderFile renders srcPath template file to dstPath using data.
	RenderFile(srcPath string, dstPath string, data interface{}) error
	// RenderText renders in text using data.
	RenderText(in string, data interface{}) (string, error)
}

// NewDefaultEngine creates a default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.GoTextEngine{}
}
