package supabase

import (
	"errors"
	"testing"
)

func TestCredentials_FromEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon")

	url, key, err := Credentials()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if url != "https://project.supabase.co" || key != "anon" {
		t.Errorf("Unexpected credentials %q %q", url, key)
	}
}

func TestCredentials_Missing(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")

	_, _, err := Credentials()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestCredentials_EmbeddedWins(t *testing.T) {
	embeddedSupabaseURL, embeddedSupabaseKey = "https://baked.supabase.co", "baked"
	t.Cleanup(func() { embeddedSupabaseURL, embeddedSupabaseKey = "", "" })
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_KEY", "env")

	url, key, err := Credentials()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if url != "https://baked.supabase.co" || key != "baked" {
		t.Errorf("Unexpected credentials %q %q", url, key)
	}
}
