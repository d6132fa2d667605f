package docker

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/moby/moby/api/pkg/stdcopy"
	"github.com/moby/moby/client"
)

// DefaultExecTimeout bounds ExecWithTimeout when the caller passes no timeout.
const DefaultExecTimeout = 60 * time.Second

// ExecResult is the raw outcome of a command executed inside a container.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// TimeoutError reports that a command did not finish within its deadline.
// The command may still be running inside the container when this error is
// returned; see ExecWithTimeout.
type TimeoutError struct {
	Cmd     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q timed out after %g seconds", e.Cmd, e.Timeout.Seconds())
}

// Exec runs cmd under /bin/sh -c inside the container and blocks until it
// finishes, returning demuxed output and the command's exit code.
func (c Container) Exec(ctx context.Context, cmd string) (ExecResult, error) {
	created, err := c.client.ExecCreate(ctx, c.ID, client.ExecCreateOptions{
		Cmd:          []string{"/bin/sh", "-c", cmd},
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to create exec in container %q: %w\nCheck that the container is running", c.Name, err)
	}

	resp, err := c.client.ExecAttach(ctx, created.ID, client.ExecAttachOptions{})
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to attach to exec in container %q: %w", c.Name, err)
	}
	defer resp.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, resp.Reader); err != nil {
		return ExecResult{}, fmt.Errorf("failed to read exec output from container %q: %w", c.Name, err)
	}

	inspect, err := c.client.ExecInspect(ctx, created.ID, client.ExecInspectOptions{})
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to read exec exit code from container %q: %w", c.Name, err)
	}

	return ExecResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: inspect.ExitCode,
	}, nil
}

// ExecDetached starts cmd under /bin/sh -c inside the container without
// waiting for it to finish, returning the exec ID.
func (c Container) ExecDetached(ctx context.Context, cmd string) (string, error) {
	created, err := c.client.ExecCreate(ctx, c.ID, client.ExecCreateOptions{
		Cmd:          []string{"/bin/sh", "-c", cmd},
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create exec in container %q: %w\nCheck that the container is running", c.Name, err)
	}

	if _, err := c.client.ExecStart(ctx, created.ID, client.ExecStartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start exec in container %q: %w", c.Name, err)
	}
	return created.ID, nil
}

// ExecWithTimeout runs cmd like Exec but gives up waiting after timeout
// (DefaultExecTimeout when timeout <= 0).
//
// The command is dispatched on a worker goroutine whose exec runs on a
// context detached from the caller's cancellation. On timeout the worker is
// NOT cancelled: the command may keep running inside the container after the
// caller sees a TimeoutError. Callers that need the process gone must kill
// the container themselves.
func (c Container) ExecWithTimeout(ctx context.Context, cmd string, timeout time.Duration) (ExecResult, error) {
	if timeout <= 0 {
		timeout = DefaultExecTimeout
	}

	type outcome struct {
		result ExecResult
		err    error
	}

	done := make(chan outcome, 1)
	execCtx := context.WithoutCancel(ctx)
	go func() {
		result, err := c.Exec(execCtx, cmd)
		done <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		return ExecResult{}, ctx.Err()
	case <-timer.C:
		return ExecResult{}, &TimeoutError{Cmd: cmd, Timeout: timeout}
	}
}
