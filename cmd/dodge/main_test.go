package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, _, err := newLogger("loud", ""); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.log")

	logger, closer, err := newLogger("debug", path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("round started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
}

// The cases share rootCmd, so flags set by one run stay set for the next.
func TestConfigCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"config"},
			want: []string{"fps: 60", "policy: carry", "interval: 700ms"},
		},
		{
			name: "flags override config",
			args: []string{"config", "--fps", "30", "--spawn-policy", "reset"},
			want: []string{"fps: 30", "policy: reset"},
		},
		{
			name:    "invalid flag value",
			args:    []string{"config", "--spawn-policy", "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}
