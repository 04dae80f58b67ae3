// AgendaDeploy is a command-line interface that takes the Cashbarber agenda
// extractor API from a bare directory to a pushed repository, ready to be
// wired up in the Easypanel dashboard.
//
// It initializes git in the project directory, creates the first commit,
// registers the remote you point it at and pushes the main branch. After the
// push it walks you through the manual Easypanel steps (project, App service,
// Dockerfile build, port 5300).
//
// Typical usage:
//
//	agendadeploy setup     # first push + deployment walkthrough
//	agendadeploy status    # repository state at a glance
//	agendadeploy guide     # reprint the Easypanel walkthrough
package main

import (
	"agendadeploy/cmd"
)

func main() {
	cmd.Execute()
}
