package server

import (
	"os"
	"path/filepath"
)

type Config struct {
	// HTTPAddr serves the leaderboard API and the SSE stream.
	HTTPAddr string

	// SSHAddr serves interactive terminal sessions.
	SSHAddr string

	// Dir holds the score database and host keys.
	Dir string
}

func DefaultConfig() Config {
	return Config{
		HTTPAddr: "127.0.0.1:8080",
		SSHAddr:  "127.0.0.1:2222",
		Dir:      filepath.Join(os.Getenv("HOME"), ".termfolio"),
	}
}

func (c Config) DBPath() string {
	return filepath.Join(c.Dir, "scores.db")
}

func (c Config) PrivateKeyPath() string {
	return filepath.Join(c.Dir, "private.pem")
}

func (c Config) PublicKeyPath() string {
	return filepath.Join(c.Dir, "public.pem")
}
