package panel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendadeploy/internal/panel"
)

func defaultOptions() panel.Options {
	return panel.Options{
		ProjectName:   "cashbarber",
		ServiceName:   "cashbarber-agenda-api",
		BranchName:    "main",
		ContainerPort: 5300,
		PublishedPort: 5300,
	}
}

func TestRender_NamesServiceAndPorts(t *testing.T) {
	text, err := panel.Render(defaultOptions())
	require.NoError(t, err)

	assert.Contains(t, text, `"cashbarber-agenda-api"`)
	assert.Contains(t, text, `"cashbarber"`)
	assert.Contains(t, text, `"main"`)
	// the port shows up once as container port and once as published port
	assert.Equal(t, 2, strings.Count(text, "5300"))
}

func TestRender_HonorsOverrides(t *testing.T) {
	opts := defaultOptions()
	opts.ContainerPort = 5300
	opts.PublishedPort = 8080

	text, err := panel.Render(opts)
	require.NoError(t, err)

	assert.Contains(t, text, "container port 5300")
	assert.Contains(t, text, "published port 8080")
}
