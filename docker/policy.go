package docker

import "github.com/sweharness/dockerutil"

// CleanupPolicy controls where teardown operations log their progress and
// whether their failures propagate to the caller. The two fields are
// orthogonal; the constructors below cover the combinations the harness uses.
type CleanupPolicy struct {
	Log             dockerutil.Logger
	PropagateErrors bool
}

// ConsolePolicy logs progress to the console and propagates failures.
func ConsolePolicy() CleanupPolicy {
	return CleanupPolicy{Log: dockerutil.NewConsoleLogger(), PropagateErrors: true}
}

// QuietPolicy suppresses all output and still propagates failures.
func QuietPolicy() CleanupPolicy {
	return CleanupPolicy{Log: dockerutil.NopLogger{}, PropagateErrors: true}
}

// LoggedPolicy routes messages through the provided logger and swallows
// failures, making teardown best-effort.
func LoggedPolicy(log dockerutil.Logger) CleanupPolicy {
	return CleanupPolicy{Log: log, PropagateErrors: false}
}

// logger returns the policy's log sink, defaulting to a no-op for the zero
// value so teardown never panics on an unset policy.
func (p CleanupPolicy) logger() dockerutil.Logger {
	if p.Log == nil {
		return dockerutil.NopLogger{}
	}
	return p.Log
}
