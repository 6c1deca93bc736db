package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// loadFleetConfig reads and validates the YAML fleet file, ensuring the
// presence of the required name and a non-empty host list.
func loadFleetConfig(path string) (*fleetConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &fleetConfig{}
	if err := yamlUnmarshal(b, fc); err != nil {
		return nil, err
	}
	if fc.Name == "" {
		return nil, errors.New("fleet.name is required")
	}
	if len(fc.Hosts) == 0 {
		return nil, errors.New("fleet.hosts must list at least one host")
	}
	for i, h := range fc.Hosts {
		if strings.TrimSpace(h) == "" {
			return nil, fmt.Errorf("hosts[%d] is empty", i)
		}
	}
	return fc, nil
}
