package utils

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// GetNadiaHome returns the path to the nadia home directory.
func GetNadiaHome() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nadia"), nil
}

// ConfigPath returns the default config file path for the given home.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.json")
}

// SessionPath returns the Telegram session file path for the given home.
func SessionPath(home string) string {
	return filepath.Join(home, "telegram-session.json")
}

// EnvFiles returns the dotenv files to read, in order of precedence.
func EnvFiles(home string) []string {
	return []string{".env", filepath.Join(home, ".env")}
}

// ExpandPath expands a leading "~" in path.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}
