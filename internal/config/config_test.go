package config

import (
	"reflect"
	"testing"
)

// clearEnv blanks every variable Load reads so ambient values cannot leak
// into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "OCR_LANGUAGES", "MAX_UPLOAD_SIZE_MB", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Name != "leadscan" || cfg.Database.SSLMode != "disable" {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if !reflect.DeepEqual(cfg.OCR.Languages, []string{"eng"}) {
		t.Errorf("languages = %v, want [eng]", cfg.OCR.Languages)
	}
	if cfg.Upload.MaxSizeBytes != 50<<20 {
		t.Errorf("max upload = %d, want %d", cfg.Upload.MaxSizeBytes, int64(50)<<20)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("OCR_LANGUAGES", "eng, deu,fra")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want db.internal", cfg.Database.Host)
	}
	if !reflect.DeepEqual(cfg.OCR.Languages, []string{"eng", "deu", "fra"}) {
		t.Errorf("languages = %v, want the comma list split and trimmed", cfg.OCR.Languages)
	}
	if cfg.Upload.MaxSizeBytes != 10<<20 {
		t.Errorf("max upload = %d, want %d", cfg.Upload.MaxSizeBytes, int64(10)<<20)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRejectsBadUploadLimit(t *testing.T) {
	clearEnv(t)

	for _, bad := range []string{"abc", "-5", "0"} {
		t.Setenv("MAX_UPLOAD_SIZE_MB", bad)
		if _, err := Load(); err == nil {
			t.Errorf("MAX_UPLOAD_SIZE_MB=%q: expected error", bad)
		}
	}
}
