package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendadeploy/internal/prompt"
)

func TestReadLine_TrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewCLIPrompter(strings.NewReader("  https://example.com/user/repo.git \n"), &out, false)

	got, err := p.ReadLine("Repository URL")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/user/repo.git", got)
	assert.Contains(t, out.String(), "Repository URL: ")
}

func TestReadLine_EmptyAnswer(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewCLIPrompter(strings.NewReader("\n"), &out, false)

	got, err := p.ReadLine("Repository URL")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadLine_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewCLIPrompter(strings.NewReader("should never be read\n"), &out, true)

	got, err := p.ReadLine("Repository URL")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Empty(t, out.String())
}

func TestYesNo(t *testing.T) {
	var out bytes.Buffer

	p := prompt.NewCLIPrompter(strings.NewReader("y\n"), &out, false)
	ok, err := p.YesNo("Continue?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	p = prompt.NewCLIPrompter(strings.NewReader("n\n"), &out, false)
	ok, err = p.YesNo("Continue?", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestYesNo_NonInteractiveUsesDefault(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewCLIPrompter(strings.NewReader(""), &out, true)

	ok, err := p.YesNo("Continue?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}
