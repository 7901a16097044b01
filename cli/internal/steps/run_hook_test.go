package steps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHook(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks are not supported on Windows")
	}

	appPath := t.TempDir()
	hookScript := `#!/bin/sh
touch "$1/hook_ran"
`
	require.NoError(t, os.WriteFile(filepath.Join(appPath, "pre-gen.sh"),
		[]byte(hookScript), 0o755))

	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = appPath
	templateCtx.IsManifestPresent = true
	templateCtx.Manifest.PreHook = "pre-gen.sh"

	runHook := RunHook{HookType: "pre"}
	require.NoError(t, runHook.Run(&createCtx, &templateCtx))

	assert.FileExists(t, filepath.Join(appPath, "hook_ran"))
	// Hook executable is removed after the run.
	assert.NoFileExists(t, filepath.Join(appPath, "pre-gen.sh"))
}

func TestRunHookNotExecutable(t *testing.T) {
	appPath := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(appPath, "post-gen.sh"),
		[]byte("#!/bin/sh\n"), 0o644))

	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = appPath
	templateCtx.IsManifestPresent = true
	templateCtx.Manifest.PostHook = "post-gen.sh"

	runHook := RunHook{HookType: "post"}
	err := runHook.Run(&createCtx, &templateCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not executable")
}

func TestRunHookMissingExecutable(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()
	templateCtx.IsManifestPresent = true
	templateCtx.Manifest.PostHook = "no-such-hook.sh"

	runHook := RunHook{HookType: "post"}
	require.Error(t, runHook.Run(&createCtx, &templateCtx))
}

func TestRunHookNoHookConfigured(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()
	templateCtx.IsManifestPresent = true

	runHook := RunHook{HookType: "pre"}
	require.NoError(t, runHook.Run(&createCtx, &templateCtx))
}

func TestRunHookNoManifest(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()

	runHook := RunHook{HookType: "post"}
	require.NoError(t, runHook.Run(&createCtx, &templateCtx))
}

func TestRunHookInvalidType(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.IsManifestPresent = true

	runHook := RunHook{HookType: "during"}
	require.Error(t, runHook.Run(&createCtx, &templateCtx))
}
