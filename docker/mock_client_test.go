package docker_test

import (
	"context"
	"errors"

	"github.com/moby/moby/client"
)

// mockEngineClient is a mock implementation of docker.EngineClient for testing
type mockEngineClient struct {
	imageListFunc        func(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error)
	imageRemoveFunc      func(ctx context.Context, imageID string, options client.ImageRemoveOptions) (client.ImageRemoveResult, error)
	containerInspectFunc func(ctx context.Context, containerID string, options client.ContainerInspectOptions) (client.ContainerInspectResult, error)
	containerStopFunc    func(ctx context.Context, containerID string, options client.ContainerStopOptions) (client.ContainerStopResult, error)
	containerRemoveFunc  func(ctx context.Context, containerID string, options client.ContainerRemoveOptions) (client.ContainerRemoveResult, error)
	copyToContainerFunc  func(ctx context.Context, containerID string, options client.CopyToContainerOptions) (client.CopyToContainerResult, error)
	execCreateFunc       func(ctx context.Context, containerID string, options client.ExecCreateOptions) (client.ExecCreateResult, error)
	execAttachFunc       func(ctx context.Context, execID string, options client.ExecAttachOptions) (client.ExecAttachResult, error)
	execStartFunc        func(ctx context.Context, execID string, options client.ExecStartOptions) (client.ExecStartResult, error)
	execInspectFunc      func(ctx context.Context, execID string, options client.ExecInspectOptions) (client.ExecInspectResult, error)
	closeFunc            func() error
}

func (m *mockEngineClient) ImageList(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error) {
	if m.imageListFunc != nil {
		return m.imageListFunc(ctx, options)
	}
	return client.ImageListResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ImageRemove(ctx context.Context, imageID string, options client.ImageRemoveOptions) (client.ImageRemoveResult, error) {
	if m.imageRemoveFunc != nil {
		return m.imageRemoveFunc(ctx, imageID, options)
	}
	return client.ImageRemoveResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ContainerInspect(ctx context.Context, containerID string, options client.ContainerInspectOptions) (client.ContainerInspectResult, error) {
	if m.containerInspectFunc != nil {
		return m.containerInspectFunc(ctx, containerID, options)
	}
	return client.ContainerInspectResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ContainerStop(ctx context.Context, containerID string, options client.ContainerStopOptions) (client.ContainerStopResult, error) {
	if m.containerStopFunc != nil {
		return m.containerStopFunc(ctx, containerID, options)
	}
	return client.ContainerStopResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ContainerRemove(ctx context.Context, containerID string, options client.ContainerRemoveOptions) (client.ContainerRemoveResult, error) {
	if m.containerRemoveFunc != nil {
		return m.containerRemoveFunc(ctx, containerID, options)
	}
	return client.ContainerRemoveResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) CopyToContainer(ctx context.Context, containerID string, options client.CopyToContainerOptions) (client.CopyToContainerResult, error) {
	if m.copyToContainerFunc != nil {
		return m.copyToContainerFunc(ctx, containerID, options)
	}
	return client.CopyToContainerResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ExecCreate(ctx context.Context, containerID string, options client.ExecCreateOptions) (client.ExecCreateResult, error) {
	if m.execCreateFunc != nil {
		return m.execCreateFunc(ctx, containerID, options)
	}
	return client.ExecCreateResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ExecAttach(ctx context.Context, execID string, options client.ExecAttachOptions) (client.ExecAttachResult, error) {
	if m.execAttachFunc != nil {
		return m.execAttachFunc(ctx, execID, options)
	}
	return client.ExecAttachResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ExecStart(ctx context.Context, execID string, options client.ExecStartOptions) (client.ExecStartResult, error) {
	if m.execStartFunc != nil {
		return m.execStartFunc(ctx, execID, options)
	}
	return client.ExecStartResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ExecInspect(ctx context.Context, execID string, options client.ExecInspectOptions) (client.ExecInspectResult, error) {
	if m.execInspectFunc != nil {
		return m.execInspectFunc(ctx, execID, options)
	}
	return client.ExecInspectResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}
