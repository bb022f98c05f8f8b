package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// PathFromEnv is the config file named by MINESWEEPER_CONFIG, if any.
func PathFromEnv() (string, bool) {
	path, ok := os.LookupEnv("MINESWEEPER_CONFIG")
	return path, ok && path != ""
}
