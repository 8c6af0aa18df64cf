package cgoconf_test

import (
	"testing"

	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/pkg/cgoconf"
)

// TestExitCodeValues verifies that exit code constants have the expected values.
func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", cgoconf.ExitSuccess, 0},
		{"ExitFailure", cgoconf.ExitFailure, 1},
		{"ExitConfigError", cgoconf.ExitConfigError, 2},
		{"ExitEnvError", cgoconf.ExitEnvError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("cgoconf.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants. This prevents drift between
// the public API and internal implementation.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", cgoconf.ExitSuccess, errors.ExitSuccess},
		{"Failure/RuntimeError", cgoconf.ExitFailure, errors.ExitRuntimeError},
		{"ConfigError", cgoconf.ExitConfigError, errors.ExitConfigError},
		{"EnvError/EnvironmentError", cgoconf.ExitEnvError, errors.ExitEnvironmentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("cgoconf.%s (%d) != errors.%s (%d)",
					tt.name, tt.public, tt.name, tt.internal)
			}
		})
	}
}
