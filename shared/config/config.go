package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the optional per-project override file. Every field has
	// a default, so running without it is the normal case.
	ConfigFile = "agendadeploy.yml"

	// RepoURLEnv lets CI set the repository URL instead of the prompt.
	RepoURLEnv = "AGENDADEPLOY_REPO_URL"

	EmojiWarning = "⚠️"
)

// Config holds the fixed identifiers the setup flow and the Easypanel
// walkthrough are built around.
type Config struct {
	ProjectName   string `yaml:"project_name"`
	ServiceName   string `yaml:"service_name"`
	RemoteName    string `yaml:"remote_name"`
	BranchName    string `yaml:"branch_name"`
	CommitMessage string `yaml:"commit_message"`
	ContainerPort int    `yaml:"container_port"`
	PublishedPort int    `yaml:"published_port"`
}

// Defaults returns the configuration for the Cashbarber agenda API as it is
// deployed today: Easypanel App service, Flask listening on 5300, published
// on the same port.
func Defaults() *Config {
	return &Config{
		ProjectName:   "cashbarber",
		ServiceName:   "cashbarber-agenda-api",
		RemoteName:    "origin",
		BranchName:    "main",
		CommitMessage: "Initial commit: Cashbarber agenda API",
		ContainerPort: 5300,
		PublishedPort: 5300,
	}
}

// Load returns the defaults, overridden by agendadeploy.yml when the file
// exists in dir. A missing file is not an error; a malformed one is.
func Load(dir string) (*Config, error) {
	// .env is how CI injects AGENDADEPLOY_REPO_URL; absence is fine.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := Defaults()

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s Could not read %s: %w", EmojiWarning, ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s Invalid config format: %w", EmojiWarning, err)
	}
	return cfg, nil
}

// RepoURLFromEnv returns the repository URL configured through the
// environment, or "" when the user should be prompted.
func RepoURLFromEnv() string {
	return os.Getenv(RepoURLEnv)
}
