// Package dockerutil contains shared utilities for the evaluation harness.
//
// It provides session ID generation, logging capabilities, and cleanup
// orchestration used by the docker package and the surrounding harness.
package dockerutil
