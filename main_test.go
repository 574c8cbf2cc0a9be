package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raisingsims/internal/config"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      options
		wantError bool
	}{
		{
			name: "Defaults",
			args: nil,
			want: options{configPath: config.DefaultPath()},
		},
		{
			name: "Stats with config",
			args: []string{"-stats", "-config", "/tmp/vpet.yaml"},
			want: options{configPath: "/tmp/vpet.yaml", showStats: true},
		},
		{
			name: "Version",
			args: []string{"-version"},
			want: options{configPath: config.DefaultPath(), showVersion: true},
		},
		{name: "Unknown flag", args: []string{"-bogus"}, wantError: true},
		{name: "Stray argument", args: []string{"feed"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantError {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var usage bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &usage)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseFlags(-h) error = %v, want flag.ErrHelp", err)
	}
	for _, name := range []string{"-config", "-stats", "-version"} {
		if !strings.Contains(usage.String(), name) {
			t.Errorf("Usage missing %s:\n%s", name, usage.String())
		}
	}
}

func TestParseFlagsErrorPrintsNoUsage(t *testing.T) {
	var usage bytes.Buffer
	if _, err := parseFlags([]string{"-bogus"}, &usage); err == nil {
		t.Fatal("Expected error for unknown flag")
	}
	if usage.Len() != 0 {
		t.Errorf("Expected no usage output, got %q", usage.String())
	}
}

func TestRunHelp(t *testing.T) {
	if err := run([]string{"-help"}); err != nil {
		t.Errorf("run(-help) error = %v, want nil", err)
	}
}

func TestSetupLogging(t *testing.T) {
	originalOutput := log.Writer()
	originalPrefix := log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(originalOutput)
		log.SetPrefix(originalPrefix)
	})

	path := filepath.Join(t.TempDir(), "logs", "vpet.log")
	cfg := &config.Config{Log: config.LogConfig{Enabled: true, Path: path}}

	closer, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	log.Printf("hello from the test")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("Log file missing message: %q", data)
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	originalOutput := log.Writer()
	t.Cleanup(func() { log.SetOutput(originalOutput) })

	closer, err := setupLogging(&config.Config{})
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRunVersion(t *testing.T) {
	if err := run([]string{"-version"}); err != nil {
		t.Errorf("run(-version) error = %v", err)
	}
}

func TestRunStatsWithoutServer(t *testing.T) {
	originalOutput := log.Writer()
	t.Cleanup(func() { log.SetOutput(originalOutput) })

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "status:\n  addr: 127.0.0.1:1\nlog:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if err := run([]string{"-stats", "-config", path}); err == nil {
		t.Error("Expected error when no pet is running")
	}
}
