package config

import (
	"os"
	"path/filepath"
)

// CLIConfigName is the file rangectl reads when --config-file is not given
const CLIConfigName = "rangectl.yaml"

// File returns the path of filename inside the config directory.
// CONFIG_DIR overrides the default of ~/.datarange
func File(filename string) string {
	dir := os.Getenv("CONFIG_DIR")
	if dir != "" {
		return filepath.Join(dir, filename)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".datarange", filename)
	}

	return filepath.Join(homeDir, ".datarange", filename)
}
