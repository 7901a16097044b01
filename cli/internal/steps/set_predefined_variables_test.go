package steps

import (
	"strconv"
	"testing"
	"time"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/stretchr/testify/require"
)

func TestSlugifyName(t *testing.T) {
	require.Equal(t, "my_project", SlugifyName("my-project"))
	require.Equal(t, "myproject", SlugifyName("MyProject"))
	require.Equal(t, "a_b_c", SlugifyName("A-b-C"))
}

func TestSetPredefinedVariables(t *testing.T) {
	createCtx := create_ctx.CreateCtx{ProjectName: "data-pipelines"}
	templateCtx := app_template.NewTemplateContext()

	setPredefinedVariables := SetPredefinedVariables{}
	require.NoError(t, setPredefinedVariables.Run(&createCtx, &templateCtx))

	require.Equal(t, "data-pipelines", templateCtx.Vars["project_name"])
	require.Equal(t, "data_pipelines", templateCtx.Vars["project_slug"])

	year, err := strconv.Atoi(templateCtx.Vars["year"])
	require.NoError(t, err)
	require.InDelta(t, time.Now().Year(), year, 1)
}
