package main

import (
	"os"
)

type Config struct {
	DataPath     string
	JWTSecret    string
	PasswordHash string // bcrypt hash of the shared dashboard password; empty disables auth
	Port         string
	StrictBoot   bool
}

func mustConfig() Config {
	cfg := Config{
		DataPath:     getenv("YIELD_DATA", "yield_data.csv"),
		JWTSecret:    getenv("JWT_SECRET", "change_me"),
		PasswordHash: getenv("DASH_PASSWORD_HASH", ""),
		Port:         getenv("PORT", "8080"),
		StrictBoot:   getenv("STRICT_BOOT", "") == "1",
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
