package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"agendadeploy/internal/git"
	"agendadeploy/shared/config"
)

var statusDir string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the repository state of the project directory",
	Long:  "Reports whether the directory is a git repository, the current short commit, working-tree cleanliness and the configured origin URL.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := git.EnsureInstalled(); err != nil {
			return err
		}

		cfg, err := config.Load(statusDir)
		if err != nil {
			return err
		}

		fmt.Println(bold("📅 AgendaDeploy Status"))

		client := git.New(statusDir)
		hash, err := client.CommitHash(ctx)
		if err != nil {
			fmt.Printf("  %s not a git repository yet, run %s first\n", yellow("●"), cyan("agendadeploy setup"))
			return nil
		}
		fmt.Printf("  %s commit %s\n", green("●"), bold(hash))

		if client.IsDirty(ctx) {
			fmt.Printf("  %s working tree has uncommitted changes\n", yellow("●"))
		} else {
			fmt.Printf("  %s working tree clean\n", green("●"))
		}

		if url, err := client.RemoteURL(ctx, cfg.RemoteName); err == nil {
			fmt.Printf("  %s remote %s = %s\n", green("●"), cfg.RemoteName, url)
		} else {
			fmt.Printf("  %s remote %s not configured\n", yellow("●"), cfg.RemoteName)
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusDir, "dir", "C", ".", "Project directory to inspect")
	rootCmd.AddCommand(statusCmd)
}
