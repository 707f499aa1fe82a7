package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies the auth_token cookie.
var JwtKey []byte

// SecureCookies marks the auth cookie Secure; enable it behind TLS.
var SecureCookies bool

func LoadAuthKey() {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		slog.Error("environment variable SECRET_KEY is not set")
		os.Exit(1)
	}
	JwtKey = []byte(key)
	SecureCookies = os.Getenv("COOKIE_SECURE") == "true"
}
