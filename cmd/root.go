/*
AgendaDeploy - first push and Easypanel walkthrough for the Cashbarber agenda API
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.BgCyan).SprintFunc()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agendadeploy",
	Short: "CLI for pushing the Cashbarber agenda API and deploying it on Easypanel.",
	Long: fmt.Sprintf(`%s

Push the agenda extractor API to your git remote, then follow the
printed steps to run it as an Easypanel App on port 5300.

%s
%s  Initialize git and create the first commit
%s  Push the main branch to your remote
%s  Walk through the Easypanel service setup

%s
Run '%s' to see available commands.
`,
		bold("📅 AgendaDeploy"),
		bold("What it does:"),
		green("✓"),
		green("✓"),
		green("✓"),
		yellow("👋 Tip:"),
		cyan("agendadeploy --help"),
	),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("\n%s %s\n\n",
			green("✨ Welcome to"), bold("AgendaDeploy"),
		)

		fmt.Println(bold("Quick Start:"))
		fmt.Printf("  %s - First push + deployment walkthrough\n", cyan("agendadeploy setup"))
		fmt.Printf("  %s - Repository state at a glance\n", cyan("agendadeploy status"))
		fmt.Printf("  %s - Reprint the Easypanel walkthrough\n\n", cyan("agendadeploy guide"))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("\n%s %s\n\n",
			red("❌ Error:"), err,
		)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetUsageTemplate(`{{.UseLine}}

  {{.Short}}

{{if .HasAvailableFlags}}Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}

Run '{{.CommandPath}} [command] --help' for more information about a command.
`)
}
