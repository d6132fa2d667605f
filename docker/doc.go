// Package docker provides Docker engine operations for the evaluation harness.
//
// It handles copying files into running containers, timeout-bound command
// execution, container and image teardown, and tiered eviction of cached
// images. The Client type is the main entry point for engine-level
// operations; Container wraps operations against a single running container.
package docker
