package app_template

import "github.com/dataeng-forge/forge/cli/internal/templates"

// TemplateCtx contains an information required for project template rendering.
type TemplateCtx struct {
	// AppPath is a path to project directory. Project template will be
	// rendered in this directory.
	AppPath string
	// TargetAppPath is a path directory where a project to be moved to
	// after rendering.
	TargetAppPath string
	// Manifest is a loaded template manifest.
	Manifest TemplateManifest
	// IsManifestPresent is true if a template manifest is loaded. False - otherwise.
	IsManifestPresent bool
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
