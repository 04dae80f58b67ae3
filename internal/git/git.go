package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git invocation in a working directory and returns its
// combined output. The default runner shells out to the git binary; tests
// substitute a fake.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(out.String())
		if detail != "" {
			return out.String(), fmt.Errorf("git %s failed: %w: %s", args[0], err, detail)
		}
		return out.String(), fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return out.String(), nil
}

// EnsureInstalled reports whether the git binary is on PATH.
func EnsureInstalled() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is not installed or not on PATH: %w", err)
	}
	return nil
}

// Client runs git operations against one working directory.
type Client struct {
	dir    string
	runner Runner
}

func New(dir string) *Client {
	return &Client{dir: dir, runner: execRunner{}}
}

// NewWithRunner builds a Client on a caller-supplied Runner.
func NewWithRunner(dir string, r Runner) *Client {
	return &Client{dir: dir, runner: r}
}

func (c *Client) Init(ctx context.Context) error {
	_, err := c.runner.Run(ctx, c.dir, "init")
	return err
}

func (c *Client) AddAll(ctx context.Context) error {
	_, err := c.runner.Run(ctx, c.dir, "add", ".")
	return err
}

func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.runner.Run(ctx, c.dir, "commit", "-m", message)
	return err
}

// RenameBranch forces the current branch to the given name, creating it if
// the repository has no commits on a branch of that name yet.
func (c *Client) RenameBranch(ctx context.Context, name string) error {
	_, err := c.runner.Run(ctx, c.dir, "branch", "-M", name)
	return err
}

func (c *Client) AddRemote(ctx context.Context, name, url string) error {
	_, err := c.runner.Run(ctx, c.dir, "remote", "add", name, url)
	return err
}

// Push pushes branch to remote and sets it as the upstream tracking branch.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, err := c.runner.Run(ctx, c.dir, "push", "-u", remote, branch)
	return err
}

func (c *Client) CommitHash(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.dir, "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) IsDirty(ctx context.Context) bool {
	out, err := c.runner.Run(ctx, c.dir, "status", "--porcelain")
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(out)) > 0
}

// RemoteURL returns the URL registered for the named remote.
func (c *Client) RemoteURL(ctx context.Context, name string) (string, error) {
	out, err := c.runner.Run(ctx, c.dir, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
