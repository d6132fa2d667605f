package dockerutil

import "sync"

// CleanupManager tracks teardown work for engine resources and runs it in
// LIFO order, so resources created last are removed first.
type CleanupManager struct {
	mu    sync.Mutex
	log   Logger
	funcs []cleanupFunc
}

type cleanupFunc struct {
	name string
	fn   func() error
}

// NewCleanupManager creates a cleanup manager that reports failures through
// the provided logger. A nil logger discards failure messages.
func NewCleanupManager(log Logger) *CleanupManager {
	if log == nil {
		log = NopLogger{}
	}
	return &CleanupManager{log: log}
}

// Add registers a teardown function. Functions are executed in LIFO order
// (last added, first executed) to ensure proper teardown sequencing.
func (m *CleanupManager) Add(name string, fn func() error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funcs = append([]cleanupFunc{{name, fn}}, m.funcs...)
}

// Execute runs all teardown functions in LIFO order, logging any errors.
// Every registered function runs, even if earlier ones fail.
func (m *CleanupManager) Execute() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cleanup := range m.funcs {
		if err := cleanup.fn(); err != nil {
			m.log.Errorf("cleanup failed for %s: %v", cleanup.name, err)
		}
	}
}
