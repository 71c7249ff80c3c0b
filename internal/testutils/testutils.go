package testutils

import (
	"testing"

	"github.com/nfrund/learnhub/internal/config"
)

// TestSessionSecret signs the session cookies of handler tests.
const TestSessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests points the configuration at apiBaseURL. Environment set with
// t.Setenv is restored when the test ends.
func ConfigForTests(t *testing.T, apiBaseURL string) config.Provider {
	t.Helper()

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("API_BASE_URL", apiBaseURL)
	t.Setenv("SESSION_SECRET", TestSessionSecret)
	t.Setenv("SESSION_STORE", "cookie")
	t.Setenv("FILES_BASE_URL", "http://files.test/images")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}
