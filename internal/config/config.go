// Package config provides configuration helpers for go-framegrab commands.
//
// Values come from FRAMEGRAB_* environment variables, optionally loaded
// from a .env file in the working directory. Command-line flags take
// precedence over the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the interactive grabber.
const (
	DefaultOutputDir = "frames"
	DefaultDevice    = 0
	DefaultLogLevel  = "info"
)

// LoadEnv loads a .env file from the working directory if one exists.
// A missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// Getenv returns the value of the given FRAMEGRAB_* variable, or the
// provided default if it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetenvInt returns the integer value of the given variable, or the
// provided default if it is unset or not a valid integer.
func GetenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// OutputDir returns the directory where captured frames are written.
func OutputDir() string {
	return Getenv("FRAMEGRAB_OUTPUT_DIR", DefaultOutputDir)
}

// Device returns the camera device index to open.
func Device() int {
	return GetenvInt("FRAMEGRAB_DEVICE", DefaultDevice)
}

// LogLevel returns the log level for the process.
func LogLevel() string {
	return Getenv("FRAMEGRAB_LOG_LEVEL", DefaultLogLevel)
}

// LogFile returns the rotating log file path, or "" for stdout only.
func LogFile() string {
	return Getenv("FRAMEGRAB_LOG_FILE", "")
}
