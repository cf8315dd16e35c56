// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API keys from the environment, a .env file, and
// a directory of plain-text key files.
//
// In the key directory the filename is the key name and the trimmed file
// contents are the value (e.g. .secrets/groq-api-key).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Names of the Groq key in the key directory and the environment.
const (
	GroqAPIKeyFile = "groq-api-key"
	GroqAPIKeyEnv  = "GROQ_API_KEY"
)

// Store holds secrets loaded from .env and the key directory.
type Store struct {
	dotenv map[string]string
	files  map[string]string
}

// Load reads envFile and every file in dir. Missing sources are not errors.
func Load(dir, envFile string) (*Store, error) {
	files, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
		dotenv = map[string]string{}
	}

	return &Store{dotenv: dotenv, files: files}, nil
}

// Resolve returns the first non-empty value among: explicit, the process
// environment variable envKey, envKey in .env, and fileKey in the key
// directory.
func (s *Store) Resolve(explicit, envKey, fileKey string) string {
	if explicit != "" {
		return explicit
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if s == nil {
		return ""
	}
	if v := s.dotenv[envKey]; v != "" {
		return v
	}
	return s.files[fileKey]
}

// Names lists the loaded secret names without their values.
func (s *Store) Names() []string {
	var names []string
	for k := range s.dotenv {
		names = append(names, k)
	}
	for k := range s.files {
		names = append(names, k)
	}
	return names
}

// LoadDir reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory yields an empty map. Unreadable files produce
// a warning on stderr but do not abort.
func LoadDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}
