package config

// Config used to store all information from the
// forge.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"forge" yaml:"forge"`
}

// CliOpts stores information about forge configuration.
// Filled in when parsing the forge.yaml configuration file.
//
// forge.yaml file format:
// forge:
//   templates:
//     - path: path/to/templates
type CliOpts struct {
	// Templates options.
	Templates []TemplateOpts
}

// TemplateOpts contains configuration for application templates.
type TemplateOpts struct {
	// Path is a directory to search template in.
	Path string
}
