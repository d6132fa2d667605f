package docker

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/moby/go-archive"
	"github.com/moby/moby/client"
	"golang.org/x/sys/unix"

	"github.com/sweharness/dockerutil"
)

// DefaultStopTimeout is the bound in seconds on a graceful container stop
// before falling back to killing the container's host process.
const DefaultStopTimeout = 15

// HeredocDelimiter is the sentinel wrapping content written via WriteFile.
// It must never appear in the written content; this package does no escaping.
// Distinct from the delimiters used by dataset-provided scripts.
const HeredocDelimiter = "EOF_1399519320"

// Container is a handle for operations against a single running container.
// The container's lifecycle belongs to the engine and the caller; each method
// here performs one operation and holds no state between calls.
type Container struct {
	client EngineClient

	ID   string
	Name string
}

// CopyTo copies the local file at src into the container at absolute path dst.
//
// The file is packaged into a temporary tar archive next to src, uploaded
// into dst's parent directory, extracted there, and both archive copies are
// deleted. The sequence is not atomic: a failure partway can leave the
// in-container archive or the extracted content behind. The temporary local
// path is derived from src, so concurrent copies of the same file race;
// callers must serialize such calls.
func (c Container) CopyTo(ctx context.Context, src, dst string) error {
	dstDir := path.Dir(dst)
	if dstDir == "." {
		return fmt.Errorf("destination path parent directory cannot be empty, dst: %s", dst)
	}

	tarPath := src + ".tar"
	if err := writeFileArchive(src, path.Base(dst), tarPath); err != nil {
		return err
	}

	data, err := os.ReadFile(tarPath)
	if err != nil {
		return fmt.Errorf("failed to read archive %q: %w", tarPath, err)
	}

	if _, err := c.Exec(ctx, fmt.Sprintf("mkdir -p %s", dstDir)); err != nil {
		return err
	}

	// The engine extracts whatever archive it is given, so the inner archive
	// is wrapped in a single-entry tar; extraction then lands it at dst.tar
	// where the in-container tar command can reach it.
	wrapped, err := wrapArchive(path.Base(dst)+".tar", data)
	if err != nil {
		return err
	}

	_, err = c.client.CopyToContainer(ctx, c.ID, client.CopyToContainerOptions{
		DestinationPath: dstDir,
		Content:         bytes.NewReader(wrapped),
	})
	if err != nil {
		return fmt.Errorf("failed to copy archive to container %q at %q: %w\nCheck that the container is running and the path is valid", c.Name, dstDir, err)
	}

	if _, err := c.Exec(ctx, fmt.Sprintf("tar -xf %s.tar -C %s", dst, dstDir)); err != nil {
		return err
	}

	if err := os.Remove(tarPath); err != nil {
		return fmt.Errorf("failed to remove local archive %q: %w", tarPath, err)
	}
	if _, err := c.Exec(ctx, fmt.Sprintf("rm %s.tar", dst)); err != nil {
		return err
	}
	return nil
}

// writeFileArchive tars the file at src into a new archive at tarPath, with
// the single entry renamed to entryName.
func writeFileArchive(src, entryName, tarPath string) error {
	content, err := archive.TarResourceRebase(src, entryName)
	if err != nil {
		return fmt.Errorf("failed to archive %q: %w\nCheck that the file exists and is readable", src, err)
	}
	defer content.Close()

	out, err := os.Create(tarPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %q: %w", tarPath, err)
	}

	if _, err := io.Copy(out, content); err != nil {
		out.Close()
		return fmt.Errorf("failed to write archive %q: %w", tarPath, err)
	}
	return out.Close()
}

// wrapArchive returns a tar archive holding data as a single file entry.
func wrapArchive(name string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	header := &tar.Header{
		Name: name,
		Mode: 0644,
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(header); err != nil {
		return nil, fmt.Errorf("failed to write tar header for %q: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write %q to tar archive: %w", name, err)
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize tar archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes data literally to the file at dst inside the container,
// using a shell heredoc wrapped in HeredocDelimiter. The caller guarantees
// data does not contain the delimiter. Errors from the underlying command
// execution are returned as-is, without classification.
func (c Container) WriteFile(ctx context.Context, data, dst string) (ExecResult, error) {
	command := fmt.Sprintf("cat <<'%s' > %s\n%s\n%s", HeredocDelimiter, dst, data, HeredocDelimiter)
	return c.Exec(ctx, command)
}

// Cleanup stops and removes the container. A graceful stop is bounded by
// DefaultStopTimeout; if it fails, the container's host process is killed by
// PID. Force-removal is attempted regardless of the stop outcome. The policy
// applies independently to the stop-or-kill stage and the remove stage. A
// zero handle is a no-op.
func (c Container) Cleanup(ctx context.Context, policy CleanupPolicy) error {
	if c.ID == "" {
		return nil
	}

	log := policy.logger()

	var stopErr error
	log.Infof("Attempting to stop container %s...", c.Name)
	timeout := DefaultStopTimeout
	_, err := c.client.ContainerStop(ctx, c.ID, client.ContainerStopOptions{Timeout: &timeout})
	if err != nil {
		log.Errorf("Failed to stop container %s: %v. Trying to forcefully kill...", c.Name, err)
		stopErr = c.kill(ctx, log)
	}

	var removeErr error
	log.Infof("Attempting to remove container %s...", c.Name)
	_, err = c.client.ContainerRemove(ctx, c.ID, client.ContainerRemoveOptions{Force: true})
	if err != nil {
		removeErr = fmt.Errorf("failed to remove container %q: %w", c.Name, err)
	} else {
		log.Infof("Container %s removed.", c.Name)
	}

	if policy.PropagateErrors {
		return errors.Join(stopErr, removeErr)
	}
	if stopErr != nil {
		log.Errorf("Failed to forcefully kill container %s: %v", c.Name, stopErr)
	}
	if removeErr != nil {
		log.Errorf("Failed to remove container %s: %v", c.Name, removeErr)
	}
	return nil
}

// kill inspects the container for its host PID and sends SIGKILL to it. A
// missing or non-positive PID is logged and skipped rather than treated as
// an error.
func (c Container) kill(ctx context.Context, log dockerutil.Logger) error {
	inspect, err := c.client.ContainerInspect(ctx, c.ID, client.ContainerInspectOptions{})
	if err != nil {
		return fmt.Errorf("failed to inspect container %q: %w", c.Name, err)
	}

	pid := 0
	if state := inspect.Container.State; state != nil {
		pid = state.Pid
	}
	if pid <= 0 {
		log.Errorf("PID for container %s: %d - not killing.", c.Name, pid)
		return nil
	}

	log.Infof("Forcefully killing container %s with PID %d...", c.Name, pid)
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		return fmt.Errorf("failed to forcefully kill container %q (pid %d): %w", c.Name, pid, err)
	}
	return nil
}
