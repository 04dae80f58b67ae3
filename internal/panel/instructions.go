// Package panel renders the manual Easypanel walkthrough printed after a
// successful push. Easypanel exposes no API for this, so the steps stay
// human instructions rather than automation.
package panel

import (
	"strings"
	"text/template"
)

// Options carries the identifiers baked into the walkthrough.
type Options struct {
	ProjectName   string
	ServiceName   string
	BranchName    string
	ContainerPort int
	PublishedPort int
}

const instructionsTemplate = `📋 Deploy on Easypanel (manual steps):

  1. Open your Easypanel dashboard and create a project named "{{.ProjectName}}".
  2. Inside the project, click "+ Service" and choose type "App".
     Name the service "{{.ServiceName}}".
  3. Under Source, connect the repository you just pushed and select
     the "{{.BranchName}}" branch.
  4. Under Build, pick "Dockerfile" as the build type.
  5. Under Ports, add a mapping: container port {{.ContainerPort}},
     published port {{.PublishedPort}}.
  6. Hit "Deploy" and wait for the build to finish.
  7. Verify with GET /health once the service shows as running.
`

// Render fills the walkthrough with the configured project identifiers.
func Render(opts Options) (string, error) {
	tmpl, err := template.New("instructions").Parse(instructionsTemplate)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
