package supabase

import (
	"errors"
	"os"

	"github.com/supabase-community/supabase-go"

	"ems-cli/config"
)

// These two vars are empty by default. We will override them via -ldflags in production builds.
var (
	embeddedSupabaseURL string
	embeddedSupabaseKey string
)

// ErrNotConfigured is returned when no project URL and key are available
var ErrNotConfigured = errors.New("SUPABASE_URL and SUPABASE_KEY must be set in environment variables")

// Credentials returns the project URL and anon key, preferring values baked
// in at build time over the environment and .env file.
func Credentials() (url, key string, err error) {
	if embeddedSupabaseURL != "" && embeddedSupabaseKey != "" {
		return embeddedSupabaseURL, embeddedSupabaseKey, nil
	}

	if err := config.LoadEnv(); err != nil {
		return "", "", err
	}

	url = os.Getenv("SUPABASE_URL")
	key = os.Getenv("SUPABASE_KEY")
	if url == "" || key == "" {
		return "", "", ErrNotConfigured
	}
	return url, key, nil
}

// NewSupabaseClient builds a client from Credentials
func NewSupabaseClient() (*supabase.Client, error) {
	url, key, err := Credentials()
	if err != nil {
		return nil, err
	}
	return supabase.NewClient(url, key, nil)
}
