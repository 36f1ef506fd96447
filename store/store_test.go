package store

import "testing"

func setTestDirs(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestFileTokens_RoundTrip(t *testing.T) {
	setTestDirs(t)

	var tokens FileTokens
	if got := tokens.Access(); got != "" {
		t.Fatalf("expected empty access token, got %q", got)
	}
	if got := tokens.Refresh(); got != "" {
		t.Fatalf("expected empty refresh token, got %q", got)
	}

	if err := tokens.SetPair("acc-1", "ref-1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := tokens.Access(); got != "acc-1" {
		t.Fatalf("expected access %q, got %q", "acc-1", got)
	}
	if got := tokens.Refresh(); got != "ref-1" {
		t.Fatalf("expected refresh %q, got %q", "ref-1", got)
	}

	if err := tokens.SetAccess("acc-2"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := tokens.Access(); got != "acc-2" {
		t.Fatalf("expected access %q, got %q", "acc-2", got)
	}
	if got := tokens.Refresh(); got != "ref-1" {
		t.Fatalf("expected refresh to survive SetAccess, got %q", got)
	}

	if err := tokens.Clear(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := tokens.Access(); got != "" {
		t.Fatalf("expected access cleared, got %q", got)
	}
	if got := tokens.Refresh(); got != "" {
		t.Fatalf("expected refresh cleared, got %q", got)
	}
}

func TestFileTokens_ClearWithoutFile(t *testing.T) {
	setTestDirs(t)

	var tokens FileTokens
	if err := tokens.Clear(); err != nil {
		t.Fatalf("expected nil error clearing absent tokens, got %v", err)
	}
}

func TestRememberUsername_RoundTrip(t *testing.T) {
	setTestDirs(t)

	if got := LastUsername(); got != "" {
		t.Fatalf("expected no remembered username, got %q", got)
	}
	if err := RememberUsername("  alice  "); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := LastUsername(); got != "alice" {
		t.Fatalf("expected %q, got %q", "alice", got)
	}
}
