package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				DBPath:    "./data/geekhours.db",
				LogLevel:  "info",
				ExportDir: ".",
			},
			wantErr: false,
		},
		{
			name: "valid debug level",
			config: Config{
				DBPath:    "./geekhours.db",
				LogLevel:  "debug",
				ExportDir: ".",
			},
			wantErr: false,
		},
		{
			name: "empty database path",
			config: Config{
				DBPath:    "",
				LogLevel:  "info",
				ExportDir: ".",
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				DBPath:    "./geekhours.db",
				LogLevel:  "verbose",
				ExportDir: ".",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
		{
			name: "empty export directory",
			config: Config{
				DBPath:    "./geekhours.db",
				LogLevel:  "info",
				ExportDir: "",
			},
			wantErr:     true,
			errorString: "export directory cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEEKHOURS_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEEKHOURS_EXPORT_DIR", "")

	cfg := Load()
	if cfg.DBPath != "./data/geekhours.db" {
		t.Fatalf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level %q", cfg.LogLevel)
	}
	if cfg.ExportDir != "." {
		t.Fatalf("unexpected default export dir %q", cfg.ExportDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GEEKHOURS_DB_PATH", "/tmp/custom.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("expected env db path, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env log level, got %q", cfg.LogLevel)
	}
}
