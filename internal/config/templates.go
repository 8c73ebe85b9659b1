package config

import (
	"fmt"
	"os"
)

func Template() string {
	return bowlctlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(bowlctlTemplate), 0o600)
}

const bowlctlTemplate = `max_competitors = 6
# 0 keeps asking until a legal pin count is entered.
max_ball_attempts = 0
clear_screen = false

[server]
enabled = false
addr = "127.0.0.1:8090"
cors_origins = ["http://localhost:3000"]
`
