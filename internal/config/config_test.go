package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "voicescribe_test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8001 {
		t.Errorf("expected default port 8001, got %d", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8001" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Mongo.Database != "voicescribe_test" {
		t.Errorf("unexpected database: %s", cfg.Mongo.Database)
	}
	if !cfg.Server.EnableRequestLogging {
		t.Error("expected request logging enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BIND_ADDRESS", "127.0.0.1")
	t.Setenv("ENABLE_REQUEST_LOGGING", "false")
	t.Setenv("WHISPER_MODEL", "whisper-large")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Server.EnableRequestLogging {
		t.Error("expected request logging disabled")
	}
	if cfg.OpenAI.WhisperModel != "whisper-large" {
		t.Errorf("unexpected whisper model: %s", cfg.OpenAI.WhisperModel)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "missing mongo url", unset: "MONGO_URL"},
		{name: "missing db name", unset: "DB_NAME"},
		{name: "missing api key", unset: "OPENAI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("expected error when %s is unset", tt.unset)
			}
		})
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8001 {
		t.Errorf("expected fallback port 8001, got %d", cfg.Server.Port)
	}
}
