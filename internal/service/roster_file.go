package service

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRosterFile reads a roster from a YAML file shaped like:
//
//	teams:
//	  - label: DXB-1000
//	    crew_members: [Cleaner 1-1, Cleaner 1-2]
func LoadRosterFile(path string) (*RosterSetupRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a YAML roster document. Unknown keys are rejected.
func ParseRoster(data []byte) (*RosterSetupRequest, error) {
	var req RosterSetupRequest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return &req, nil
}
