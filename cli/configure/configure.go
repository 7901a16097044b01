// Package configure locates and loads the forge environment configuration.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dataeng-forge/forge/cli/cmdcontext"
	"github.com/dataeng-forge/forge/cli/config"
	"github.com/dataeng-forge/forge/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigName is a default name of the forge configuration file.
	ConfigName = "forge.yaml"
)

// GetDefaultCliOpts returns `default` options for forge.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{},
	}
}

// decodeConfig decodes raw config into CliOpts.
func decodeConfig(rawConfigOpts map[string]interface{}, cfg *config.CliOpts) error {
	var rootCfg config.Config
	rootCfg.CliConfig = cfg
	if err := mapstructure.Decode(rawConfigOpts, &rootCfg); err != nil {
		return err
	}
	if rootCfg.CliConfig == nil {
		return fmt.Errorf("missing forge section")
	}
	return nil
}

// findConfigPath searches for the configuration file: explicit path first,
// then the current directory, then the user config directory.
func findConfigPath(configurePath string) (string, error) {
	if configurePath != "" {
		if !util.IsRegularFile(configurePath) {
			return "", fmt.Errorf("configuration file %q not found", configurePath)
		}
		return configurePath, nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	localConfig := filepath.Join(workDir, ConfigName)
	if util.IsRegularFile(localConfig) {
		return localConfig, nil
	}

	homeDir, err := util.GetHomeDir()
	if err != nil {
		return "", nil
	}
	homeConfig := filepath.Join(homeDir, ".config", "forge", ConfigName)
	if util.IsRegularFile(homeConfig) {
		return homeConfig, nil
	}

	return "", nil
}

// GetCliOpts returns forge options from the config file located at configurePath.
// Missing config file is not an error: default options are returned.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := GetDefaultCliOpts()

	configPath, err := findConfigPath(configurePath)
	if err != nil {
		return nil, "", err
	}
	if configPath == "" {
		log.Debugf("No %s found, using default configuration", ConfigName)
		return cfg, "", nil
	}

	if configPath, err = filepath.Abs(configPath); err != nil {
		return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse forge configuration: %s", err)
	}
	if err := decodeConfig(rawConfigOpts, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse forge configuration: %s", err)
	}

	// Template search paths are relative to the configuration file directory.
	configDir := filepath.Dir(configPath)
	for i := range cfg.Templates {
		if !filepath.IsAbs(cfg.Templates[i].Path) {
			cfg.Templates[i].Path = filepath.Join(configDir, cfg.Templates[i].Path)
		}
	}

	return cfg, configPath, nil
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
	}

	return nil
}
