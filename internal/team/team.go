// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package team decodes and validates team member lists supplied by callers.
package team

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// ErrNotList is returned when team members are null instead of a list.
var ErrNotList = errors.New("team members must be a list")

// ParseJSON decodes a JSON array of team members and validates each one.
// Unknown fields are ignored.
func ParseJSON(data []byte) ([]types.TeamMember, error) {
	var members []types.TeamMember
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&members); err != nil {
		return nil, fmt.Errorf("decoding team members: %w", err)
	}
	if members == nil {
		return nil, fmt.Errorf("decoding team members: %w", ErrNotList)
	}
	return finish(members)
}

// ParseYAML decodes a YAML sequence of team members and validates each one.
func ParseYAML(data []byte) ([]types.TeamMember, error) {
	var members []types.TeamMember
	if err := yaml.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decoding team members: %w", err)
	}
	return finish(members)
}

// LoadFile reads team members from a .json, .yaml or .yml file.
func LoadFile(path string) ([]types.TeamMember, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading team file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("team file %s: unsupported extension (use .json, .yaml or .yml)", path)
	}
}

// finish validates members and normalizes absent skills to an empty list.
func finish(members []types.TeamMember) ([]types.TeamMember, error) {
	if err := types.ValidateMembers(members); err != nil {
		return nil, err
	}
	if members == nil {
		members = []types.TeamMember{}
	}
	for i := range members {
		if members[i].Skills == nil {
			members[i].Skills = []string{}
		}
	}
	return members, nil
}
