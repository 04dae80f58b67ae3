package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"agendadeploy/internal/git"
	"agendadeploy/internal/prompt"
	"agendadeploy/internal/setup"
	"agendadeploy/shared/config"
)

var (
	setupURL     string
	setupDir     string
	setupYes     bool
	setupTimeout time.Duration
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Initialize git, push the first commit and print the Easypanel steps",
	Long: `Runs the full first-push sequence against the project directory:
- git init, stage and commit everything
- rename the branch to main
- register your repository URL as origin and push

Each step is checked; the first failure stops the run. On success the
Easypanel deployment walkthrough is printed.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVarP(&setupURL, "url", "u", "", "Repository URL (skips the prompt)")
	setupCmd.Flags().StringVarP(&setupDir, "dir", "C", ".", "Project directory to operate on")
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Non-interactive mode, never prompt")
	setupCmd.Flags().DurationVar(&setupTimeout, "push-timeout", setup.DefaultPushTimeout, "How long to wait for the push before giving up")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(setupDir)
	if err != nil {
		return err
	}

	return setup.Run(ctx, setup.Options{
		RepoURL:     setupURL,
		PushTimeout: setupTimeout,
		Git:         git.New(setupDir),
		Prompter:    prompt.NewCLIPrompter(os.Stdin, os.Stdout, setupYes),
		Config:      cfg,
		Out:         os.Stdout,
	})
}
