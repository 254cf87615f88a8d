package repositories

import (
	"github.com/rios0rios0/autorelease/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autorelease/internal/domain/repositories"
)

// BackendRegistry holds the known VCS backends in registration order and
// selects the one applicable to the working directory.
type BackendRegistry struct {
	backends []domainRepos.BackendRepository
	selected domainRepos.BackendRepository
	resolved bool
}

// NewBackendRegistry creates an empty backend registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{} //nolint:exhaustruct // empty until Register
}

// Register appends a backend. Registering the same backend name twice is a
// no-op, keeping the original position.
func (r *BackendRegistry) Register(backend domainRepos.BackendRepository) {
	for _, existing := range r.backends {
		if existing.Name() == backend.Name() {
			return
		}
	}
	r.backends = append(r.backends, backend)
}

// Find returns the first backend whose AppliesTo holds for dir, memoized for
// the process lifetime. It returns a NoBackendDetectedError when none applies.
func (r *BackendRegistry) Find(dir string) (domainRepos.BackendRepository, error) {
	if r.resolved {
		if r.selected == nil {
			return nil, &entities.NoBackendDetectedError{Dir: dir}
		}
		return r.selected, nil
	}

	r.resolved = true
	for _, backend := range r.backends {
		if backend.AppliesTo(dir) {
			r.selected = backend
			return backend, nil
		}
	}

	return nil, &entities.NoBackendDetectedError{Dir: dir}
}

// Names returns the list of registered backend names in order.
func (r *BackendRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for _, backend := range r.backends {
		names = append(names, backend.Name())
	}
	return names
}
