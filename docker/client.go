package docker

import (
	"context"
	"fmt"

	"github.com/moby/moby/client"

	"github.com/sweharness/dockerutil"
)

type Client struct {
	client EngineClient
}

// NewClient creates a Client that wraps the provided engine client interface.
func NewClient(engineClient EngineClient) Client {
	return Client{
		client: engineClient,
	}
}

// NewDefaultClient creates a Client with a real Docker client from the environment.
func NewDefaultClient() (Client, error) {
	cli, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return Client{}, fmt.Errorf("failed to create docker client: %w\nEnsure Docker is running and DOCKER_HOST is set correctly", err)
	}

	return NewClient(cli), nil
}

// Close closes the underlying engine client connection.
func (c Client) Close() {
	c.client.Close()
}

// Container returns a handle for operations against a running container. The
// container's lifecycle is owned by the caller and the engine; the handle
// performs single operations against it.
func (c Client) Container(id, name string) Container {
	return Container{
		client: c.client,
		ID:     id,
		Name:   name,
	}
}

// ListImages returns the set of all image tags known to the engine, including
// intermediate images.
//
// Do not call this from multiple concurrent call sites: the engine's listing
// is not guaranteed consistent while images are being created or removed.
func (c Client) ListImages(ctx context.Context) (map[string]struct{}, error) {
	result, err := c.client.ImageList(ctx, client.ImageListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w\nDocker daemon may be unreachable", err)
	}

	tags := make(map[string]struct{})
	for _, summary := range result.Items {
		for _, tag := range summary.RepoTags {
			tags[tag] = struct{}{}
		}
	}
	return tags, nil
}

// RemoveImage force-removes the named image. Progress and failures route
// through the policy's log sink; the error is returned only when the policy
// propagates errors, otherwise it is logged and swallowed.
func (c Client) RemoveImage(ctx context.Context, name string, policy CleanupPolicy) error {
	log := policy.logger()

	log.Infof("Attempting to remove image %s...", name)
	_, err := c.client.ImageRemove(ctx, name, client.ImageRemoveOptions{Force: true})
	if err != nil {
		err = fmt.Errorf("failed to remove image %q: %w", name, err)
		if policy.PropagateErrors {
			return err
		}
		log.Errorf("Failed to remove image %s: %v", name, err)
		return nil
	}
	log.Infof("Image %s removed.", name)
	return nil
}

// CleanImages removes every cached image whose retention tier and prior
// existence make it eligible, per ShouldRemove. Individual removal failures
// are logged and skipped rather than aborting the batch. Returns the number
// of images removed; the returned error is non-nil only when the image
// listing itself fails.
func (c Client) CleanImages(ctx context.Context, priorImages map[string]struct{}, cache RetentionTier, clean bool, log dockerutil.Logger) (int, error) {
	if log == nil {
		log = dockerutil.NopLogger{}
	}

	images, err := c.ListImages(ctx)
	if err != nil {
		return 0, err
	}

	log.Infof("Cleaning cached images...")
	removed := 0
	for name := range images {
		if !ShouldRemove(name, cache, clean, priorImages) {
			continue
		}
		if err := c.RemoveImage(ctx, name, QuietPolicy()); err != nil {
			log.Errorf("Error removing image %s: %v", name, err)
			continue
		}
		removed++
	}
	log.Infof("Removed %d images.", removed)
	return removed, nil
}
