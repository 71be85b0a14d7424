// Command token mints a bearer token for local testing of the protected
// listing endpoints. It signs with the configured JWT secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/garnizeh/jobboard/internal/auth"
	"github.com/garnizeh/jobboard/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	user := flag.String("user", "dev-user", "user id to embed in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to token_duration from config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	d := *ttl
	if d <= 0 {
		d = cfg.TokenDuration
	}

	tok, err := auth.IssueToken(cfg.JWTSecret, *user, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Token error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "token for %q expires at %s\n", *user, time.Now().Add(d).UTC().Format(time.RFC3339))
	fmt.Println(tok)
}
