// Package harness provides utilities for integration testing the ccline CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CCLINE_HOME: Isolated per test (temp directory)
//   - CCLINE_DEBUG: Disabled to reduce noise
//   - CCLINE_COST_*: Cleared so the host configuration never leaks in
package harness
