package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "HUMINT_TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "HUMINT_TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "HUMINT_TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "HUMINT_TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "HUMINT_TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestLoad_RefusesWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when GEMINI_API_KEY is missing")
		}
	}()

	Load()
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("ENV", "")
	t.Setenv("NODE_ENV", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %q, got %q", DefaultPort, cfg.Port)
	}
	if cfg.MongoURI != DefaultMongoURI || !cfg.MongoURIDefault {
		t.Errorf("Expected default mongo URI, got %q (default=%v)", cfg.MongoURI, cfg.MongoURIDefault)
	}
	if cfg.GeminiModel != DefaultModel {
		t.Errorf("Expected model %q, got %q", DefaultModel, cfg.GeminiModel)
	}
	if cfg.IsDevelopment() {
		t.Error("Expected production configuration by default")
	}
}

func TestLoad_NodeEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ENV", "")
	t.Setenv("NODE_ENV", "development")

	cfg := Load()

	if !cfg.IsDevelopment() {
		t.Errorf("Expected development env from NODE_ENV, got %q", cfg.Env)
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("HUMINT_API_URL", "")
	t.Setenv("HUMINT_REQUEST_TIMEOUT", "")

	cfg := LoadClient()

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Expected API URL %q, got %q", DefaultAPIURL, cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 0 {
		t.Errorf("Expected no timeout, got %d", cfg.TimeoutSeconds)
	}
}
