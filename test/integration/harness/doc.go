// Package harness provides utilities for integration testing the nebula CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - NEBULA_CONFIG: Isolated per test (temp directory)
//   - NEBULA_ASSETS: Isolated per test (temp directory)
//   - NEBULA_DEBUG: Removed to reduce noise
package harness
