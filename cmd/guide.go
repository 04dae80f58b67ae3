package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"agendadeploy/internal/panel"
	"agendadeploy/shared/config"
)

var guideDir string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the Easypanel deployment walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(guideDir)
		if err != nil {
			return err
		}

		instructions, err := panel.Render(panel.Options{
			ProjectName:   cfg.ProjectName,
			ServiceName:   cfg.ServiceName,
			BranchName:    cfg.BranchName,
			ContainerPort: cfg.ContainerPort,
			PublishedPort: cfg.PublishedPort,
		})
		if err != nil {
			return err
		}

		fmt.Println(instructions)
		return nil
	},
}

func init() {
	guideCmd.Flags().StringVarP(&guideDir, "dir", "C", ".", "Project directory holding the optional agendadeploy.yml")
	rootCmd.AddCommand(guideCmd)
}
