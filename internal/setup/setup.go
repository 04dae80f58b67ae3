// Package setup drives the first-push flow: preflight checks, collecting the
// repository URL, the fixed git sequence and the Easypanel walkthrough.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"agendadeploy/internal/git"
	"agendadeploy/internal/panel"
	"agendadeploy/internal/prompt"
	"agendadeploy/shared"
	"agendadeploy/shared/config"
)

// DefaultPushTimeout bounds the one network operation in the sequence. An
// unresponsive remote aborts the run instead of hanging it.
const DefaultPushTimeout = 5 * time.Minute

// Options carries everything Run needs, so the flow has no ambient state
// beyond the git metadata it creates.
type Options struct {
	RepoURL     string
	PushTimeout time.Duration
	Git         *git.Client
	Prompter    prompt.Prompter
	Config      *config.Config
	Out         io.Writer
	Log         *shared.Logger

	// EnsureGit defaults to git.EnsureInstalled.
	EnsureGit func() error
}

// Run executes the setup flow. Every git step is checked and the first
// failure aborts the rest of the sequence, including the success banner.
func Run(ctx context.Context, opts Options) error {
	log := opts.Log
	if log == nil {
		log = shared.PackageLogger("🛠️ setup::")
	}
	if opts.PushTimeout <= 0 {
		opts.PushTimeout = DefaultPushTimeout
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	log.Info("🚀 Cashbarber agenda API setup")
	log.Info("----------------------------------------")

	ensureGit := opts.EnsureGit
	if ensureGit == nil {
		ensureGit = git.EnsureInstalled
	}

	log.Info("=== PHASE 1: Preflight checks ===")
	if err := ensureGit(); err != nil {
		return fmt.Errorf("preflight checks failed: %w", err)
	}
	log.Success("git found on PATH")

	url, err := resolveRepoURL(opts)
	if err != nil {
		return err
	}

	log.Info("=== PHASE 2: Publishing to %s ===", url)
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"initialize repository", opts.Git.Init},
		{"stage project files", opts.Git.AddAll},
		{"create initial commit", func(ctx context.Context) error {
			return opts.Git.Commit(ctx, cfg.CommitMessage)
		}},
		{fmt.Sprintf("rename branch to %s", cfg.BranchName), func(ctx context.Context) error {
			return opts.Git.RenameBranch(ctx, cfg.BranchName)
		}},
		{fmt.Sprintf("register remote %s", cfg.RemoteName), func(ctx context.Context) error {
			return opts.Git.AddRemote(ctx, cfg.RemoteName, url)
		}},
		{fmt.Sprintf("push %s to %s", cfg.BranchName, cfg.RemoteName), func(ctx context.Context) error {
			pushCtx, cancel := context.WithTimeout(ctx, opts.PushTimeout)
			defer cancel()
			return opts.Git.Push(pushCtx, cfg.RemoteName, cfg.BranchName)
		}},
	}

	for i, step := range steps {
		log.Info("[%d/%d] %s", i+1, len(steps), step.name)
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	log.Success("Code pushed to %s", url)

	log.Info("=== PHASE 3: Deployment walkthrough ===")
	instructions, err := panel.Render(panel.Options{
		ProjectName:   cfg.ProjectName,
		ServiceName:   cfg.ServiceName,
		BranchName:    cfg.BranchName,
		ContainerPort: cfg.ContainerPort,
		PublishedPort: cfg.PublishedPort,
	})
	if err != nil {
		return fmt.Errorf("could not render deployment instructions: %w", err)
	}

	fmt.Fprintf(opts.Out, "\n🎉 Setup complete! Your code is on %s (%s branch).\n\n", cfg.RemoteName, cfg.BranchName)
	fmt.Fprintln(opts.Out, instructions)
	return nil
}

// resolveRepoURL prefers an explicit flag value, then the environment, and
// prompts only when neither is set. An empty answer is a hard error: the
// remote-add step must never see an empty URL.
func resolveRepoURL(opts Options) (string, error) {
	url := opts.RepoURL
	if url == "" {
		url = config.RepoURLFromEnv()
	}
	if url == "" && opts.Prompter != nil {
		var err error
		url, err = opts.Prompter.ReadLine("Repository URL")
		if err != nil {
			return "", fmt.Errorf("could not read repository URL: %w", err)
		}
	}
	if url == "" {
		return "", errors.New("repository URL must not be empty")
	}
	return url, nil
}
