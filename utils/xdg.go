package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

func XDGHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}

// XDGDataHome is the per-user data directory of app: %LOCALAPPDATA% on
// Windows, $XDG_DATA_HOME elsewhere.
func XDGDataHome(app string) string {
	if runtime.GOOS == "windows" {
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(XDGHome(), "AppData", "Local")
		}
		return filepath.Join(local, app)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(XDGHome(), ".local", "share")
	}
	return filepath.Join(dataHome, app)
}

// OsuHome is where the osu! stable installer puts the game by default.
func OsuHome() string {
	return XDGDataHome("osu!")
}
