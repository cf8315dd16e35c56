// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "groq-api-key", "  gsk_abc123  \n")
				writeFile(t, dir, "other-key", "xyz789")
				return dir
			},
			want: map[string]string{
				"groq-api-key": "gsk_abc123",
				"other-key":    "xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "groq-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"groq-api-key": "valid-key",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadDir(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, GroqAPIKeyFile, "from-file")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GROQ_API_KEY=from-dotenv\n"), 0o644))

	store, err := Load(dir, envFile)
	require.NoError(t, err)

	t.Setenv(GroqAPIKeyEnv, "")
	assert.Equal(t, "explicit", store.Resolve("explicit", GroqAPIKeyEnv, GroqAPIKeyFile))
	assert.Equal(t, "from-dotenv", store.Resolve("", GroqAPIKeyEnv, GroqAPIKeyFile))

	t.Setenv(GroqAPIKeyEnv, "from-env")
	assert.Equal(t, "from-env", store.Resolve("", GroqAPIKeyEnv, GroqAPIKeyFile))

	t.Setenv(GroqAPIKeyEnv, "")
	noDotenv, err := Load(dir, filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", noDotenv.Resolve("", GroqAPIKeyEnv, GroqAPIKeyFile))

	names := noDotenv.Names()
	sort.Strings(names)
	assert.Equal(t, []string{GroqAPIKeyFile}, names)
}

func TestResolve_NilStore(t *testing.T) {
	t.Setenv(GroqAPIKeyEnv, "")
	var s *Store
	assert.Equal(t, "", s.Resolve("", GroqAPIKeyEnv, GroqAPIKeyFile))
	assert.Equal(t, "x", s.Resolve("x", GroqAPIKeyEnv, GroqAPIKeyFile))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
