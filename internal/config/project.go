package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/econum/cableviz/internal/logging"
)

// ProjectFileName is the project-local configuration file.
const ProjectFileName = ".cableviz.yaml"

// FindProjectFile walks up from dir looking for ProjectFileName and returns
// its path, or "" when the filesystem root is reached first.
func FindProjectFile(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(current, ProjectFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// ResolveProjectFile determines the project-local configuration file.
// It checks, in order, the CABLEVIZ_PROJECT_CONFIG environment variable and
// a walk up from startDir. It returns "" when there is none.
func ResolveProjectFile(ctx context.Context, startDir string) string {
	if env := os.Getenv(EnvPrefix + "_PROJECT_CONFIG"); env != "" {
		return env
	}

	path, err := FindProjectFile(startDir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("start_dir", startDir).
			Msg("unexpected error during project config discovery")
		return ""
	}
	return path
}
