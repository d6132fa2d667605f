package docker_test

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/moby/moby/client"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted log lines for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Errorf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) infoText() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.infos, "\n")
}

func (l *recordingLogger) errorText() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.errors, "\n")
}

// stdoutFrame wraps s in the engine's multiplexed stdout stream framing.
func stdoutFrame(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	_, err := stdcopy.NewStdWriter(&buf, stdcopy.Stdout).Write([]byte(s))
	require.NoError(t, err)
	return buf.Bytes()
}

// stderrFrame wraps s in the engine's multiplexed stderr stream framing.
func stderrFrame(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	_, err := stdcopy.NewStdWriter(&buf, stdcopy.Stderr).Write([]byte(s))
	require.NoError(t, err)
	return buf.Bytes()
}

// execAttachResult builds an attach result whose reader yields payload. The
// connection is a closed pipe so Close is safe to call.
func execAttachResult(payload []byte) client.ExecAttachResult {
	server, conn := net.Pipe()
	_ = server.Close()

	return client.ExecAttachResult{
		HijackedResponse: client.HijackedResponse{
			Conn:   conn,
			Reader: bufio.NewReader(bytes.NewReader(payload)),
		},
	}
}

// successfulExecMock wires the three exec calls for commands that succeed
// with the given output, appending each executed shell command to commands.
func successfulExecMock(t *testing.T, output string, commands *[]string) *mockEngineClient {
	t.Helper()

	var mu sync.Mutex
	return &mockEngineClient{
		execCreateFunc: func(ctx context.Context, containerID string, options client.ExecCreateOptions) (client.ExecCreateResult, error) {
			mu.Lock()
			defer mu.Unlock()
			require.Len(t, options.Cmd, 3)
			*commands = append(*commands, options.Cmd[2])
			return client.ExecCreateResult{ID: fmt.Sprintf("exec-%d", len(*commands))}, nil
		},
		execAttachFunc: func(ctx context.Context, execID string, options client.ExecAttachOptions) (client.ExecAttachResult, error) {
			return execAttachResult(stdoutFrame(t, output)), nil
		},
		execInspectFunc: func(ctx context.Context, execID string, options client.ExecInspectOptions) (client.ExecInspectResult, error) {
			return client.ExecInspectResult{ExitCode: 0}, nil
		},
	}
}
