package rdconv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DefaultHeader, config.Header)
	assert.False(t, config.Verbose)
	assert.Nil(t, config.Logger)

	// The defaults are copied, not shared.
	config.Header.Aliases[0] = "changed"
	assert.Equal(t, "re2_syntax", DefaultHeader.Aliases[0])
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name: re2_regexp
aliases:
  - re2_regexp
title: "RE2 Regexp"
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Header{
		Author:  "Girish Palya",
		Name:    "re2_regexp",
		Aliases: []string{"re2_regexp"},
		Title:   "RE2 Regexp",
	}, config.Header)
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader, config.Header)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yml") },
			wantMsg: "failed to read config",
		},
		{
			name:    "invalid yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "title: [unclosed") },
			wantMsg: "failed to parse config",
		},
		{
			name:    "empty name",
			path:    func(t *testing.T) string { return writeConfig(t, `name: ""`) },
			wantMsg: "name must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestWriteHeader(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteHeader(&out, DefaultHeader))
	assert.Equal(t, defaultHeader, out.String())
}

func TestLogf(t *testing.T) {
	var log bytes.Buffer
	config := Config{Logger: &log}

	logf(config, "hidden %d", 1)
	assert.Empty(t, log.String())

	config.Verbose = true
	logf(config, "shown %d", 2)
	assert.Equal(t, "shown 2\n", log.String())
}
