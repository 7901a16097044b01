package steps

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/internal/fsops"
	"github.com/mitchellh/mapstructure"
)

// CanonicalLicenseFileName is the name of the license file kept in the
// generated project.
const CanonicalLicenseFileName = "LICENSE"

// licenseFileByChoice maps a license selection to its source file in the
// rendered tree.
var licenseFileByChoice = map[string]string{
	"MIT license":                    "LICENSE_MIT",
	"BSD license":                    "LICENSE_BSD",
	"ISC license":                    "LICENSE_ISC",
	"Apache Software License 2.0":    "LICENSE_APACHE",
	"GNU General Public License v3":  "LICENSE_GPL",
}

// AllLicenseFiles lists every license source file shipped by a template.
var AllLicenseFiles = []string{
	"LICENSE_MIT", "LICENSE_BSD", "LICENSE_ISC", "LICENSE_APACHE", "LICENSE_GPL",
}

// FeatureFlags is the resolved per-generation feature selection. Values are
// already-collected variable values, never raw placeholder text.
type FeatureFlags struct {
	Mkdocs            string `mapstructure:"mkdocs"`
	Codecov           string `mapstructure:"codecov"`
	Dockerfile        string `mapstructure:"dockerfile"`
	Devcontainer      string `mapstructure:"devcontainer"`
	PublishToPypi     string `mapstructure:"publish_to_pypi"`
	OpenSourceLicense string `mapstructure:"open_source_license"`
	IncludeAstroCli   string `mapstructure:"include_astro_cli"`
}

// DecodeFeatureFlags extracts the feature flag set from collected variables.
func DecodeFeatureFlags(vars map[string]string) (FeatureFlags, error) {
	var flags FeatureFlags
	if err := mapstructure.Decode(vars, &flags); err != nil {
		return flags, fmt.Errorf("failed to decode feature flags: %s", err)
	}
	return flags, nil
}

// CustomizeTree represents the post-generation customization step. Every
// branch of the decision table operates on its own path set and failures are
// contained to their path: a conflict or an OS failure is a warning, a
// missing source is a debug-level no-op.
type CustomizeTree struct {
}

// removePath logs and tolerates per-path removal failures.
func removePath(projectPath string, relPath string, removeOp func(string) error) {
	err := removeOp(filepath.Join(projectPath, relPath))
	switch {
	case errors.Is(err, fsops.ErrSourceMissing):
		log.Debugf("%s does not exist, skipping", relPath)
	case err != nil:
		log.Warnf("Could not remove %s: %s", relPath, err)
	default:
		log.Debugf("Removed %s", relPath)
	}
}

// movePath logs and tolerates per-path move failures.
func movePath(projectPath string, srcRel string, dstRel string) {
	err := fsops.Move(filepath.Join(projectPath, srcRel), filepath.Join(projectPath, dstRel))
	switch {
	case errors.Is(err, fsops.ErrSourceMissing):
		log.Warnf("Source %s does not exist, skipping move operation", srcRel)
	case errors.Is(err, fsops.ErrDestinationExists):
		log.Warnf("Target %s already exists", dstRel)
	case err != nil:
		log.Warnf("Could not move %s to %s: %s", srcRel, dstRel, err)
	default:
		log.Debugf("Moved %s to %s", srcRel, dstRel)
	}
}

// applyLicenseChoice keeps exactly one license file under the canonical name,
// or none for a not-open-source selection.
func applyLicenseChoice(projectPath string, licenseChoice string) {
	licenseToKeep, recognized := licenseFileByChoice[licenseChoice]
	if recognized {
		movePath(projectPath, licenseToKeep, CanonicalLicenseFileName)
	}

	for _, licenseFile := range AllLicenseFiles {
		if licenseFile == licenseToKeep {
			continue
		}
		removePath(projectPath, licenseFile, fsops.RemoveFile)
	}
}

// Run applies the feature flag decision table to the rendered tree.
func (CustomizeTree) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	flags, err := DecodeFeatureFlags(templateCtx.Vars)
	if err != nil {
		return err
	}
	projectPath := templateCtx.AppPath

	if flags.Mkdocs != "y" {
		removePath(projectPath, "docs", fsops.RemoveDir)
		removePath(projectPath, "mkdocs.yml", fsops.RemoveFile)
		removePath(projectPath, filepath.Join(".github", "workflows", "docs.yml"),
			fsops.RemoveFile)
	}

	if flags.Codecov != "y" {
		removePath(projectPath, "codecov.yaml", fsops.RemoveFile)
		removePath(projectPath,
			filepath.Join(".github", "workflows", "validate-codecov-config.yml"),
			fsops.RemoveFile)
	}

	if flags.Dockerfile != "y" {
		removePath(projectPath, "Dockerfile", fsops.RemoveFile)
	}

	if flags.Devcontainer != "y" {
		removePath(projectPath, ".devcontainer", fsops.RemoveDir)
	}

	if flags.PublishToPypi != "y" {
		removePath(projectPath, filepath.Join(".github", "workflows", "publish.yml"),
			fsops.RemoveFile)
	}

	applyLicenseChoice(projectPath, flags.OpenSourceLicense)

	return nil
}
