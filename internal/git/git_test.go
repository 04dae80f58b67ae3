package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendadeploy/internal/git"
)

type fakeRunner struct {
	calls  [][]string
	output string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

func TestClient_BuildsExpectedInvocations(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{}
	client := git.NewWithRunner(".", runner)

	require.NoError(t, client.Init(ctx))
	require.NoError(t, client.AddAll(ctx))
	require.NoError(t, client.Commit(ctx, "Initial commit: Cashbarber agenda API"))
	require.NoError(t, client.RenameBranch(ctx, "main"))
	require.NoError(t, client.AddRemote(ctx, "origin", "https://example.com/user/repo.git"))
	require.NoError(t, client.Push(ctx, "origin", "main"))

	expected := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", "Initial commit: Cashbarber agenda API"},
		{"branch", "-M", "main"},
		{"remote", "add", "origin", "https://example.com/user/repo.git"},
		{"push", "-u", "origin", "main"},
	}
	assert.Equal(t, expected, runner.calls)
}

func TestClient_PropagatesRunnerError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("remote rejected")}
	client := git.NewWithRunner(".", runner)

	err := client.Push(context.Background(), "origin", "main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote rejected")
}

func TestClient_CommitHashTrimsOutput(t *testing.T) {
	runner := &fakeRunner{output: "a1b2c3d\n"}
	client := git.NewWithRunner(".", runner)

	hash, err := client.CommitHash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d", hash)
	assert.Equal(t, [][]string{{"rev-parse", "--short=7", "HEAD"}}, runner.calls)
}

func TestClient_IsDirty(t *testing.T) {
	dirty := git.NewWithRunner(".", &fakeRunner{output: " M app.py\n"})
	assert.True(t, dirty.IsDirty(context.Background()))

	clean := git.NewWithRunner(".", &fakeRunner{output: "\n"})
	assert.False(t, clean.IsDirty(context.Background()))

	broken := git.NewWithRunner(".", &fakeRunner{err: errors.New("not a repository")})
	assert.False(t, broken.IsDirty(context.Background()))
}

func TestClient_RemoteURL(t *testing.T) {
	runner := &fakeRunner{output: "https://example.com/user/repo.git\n"}
	client := git.NewWithRunner(".", runner)

	url, err := client.RemoteURL(context.Background(), "origin")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/user/repo.git", url)
	assert.Equal(t, [][]string{{"remote", "get-url", "origin"}}, runner.calls)
}

func TestEnsureInstalled_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := git.EnsureInstalled()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}
