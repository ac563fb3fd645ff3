package config

import "path/filepath"

// SettingsDir is the project-local directory for settings, logs and other
// session artifacts.
const SettingsDir = ".foliochat"

// BuildSettingsPath resolves a filename inside the settings directory.
func BuildSettingsPath(filename string) string {
	return filepath.Join(SettingsDir, filename)
}
