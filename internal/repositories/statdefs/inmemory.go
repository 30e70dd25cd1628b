package statdefs

import (
	"context"
	"sync"

	statkiterr "github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/uuid"
)

// InMemoryRepository is a map-backed implementation of Repository, useful
// for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	defs          map[string]*Definition
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		defs:          make(map[string]*Definition),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  ClockTimeProvider{},
	}
}

// Create stores a new definition, assigning an ID when absent
func (r *InMemoryRepository) Create(ctx context.Context, def *Definition) error {
	if def == nil {
		return statkiterr.InvalidArgument("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if def.ID == "" {
		def.ID = r.uuidGenerator.New()
	}
	if _, exists := r.defs[def.ID]; exists {
		return statkiterr.InvalidArgumentf("definition %q already exists", def.ID).
			WithMeta("definition_id", def.ID)
	}

	now := r.timeProvider.Now()
	def.CreatedAt = now
	def.UpdatedAt = now

	// Copy to avoid external modification
	stored := *def
	r.defs[def.ID] = &stored
	return nil
}

// Get retrieves a definition by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Definition, error) {
	if id == "" {
		return nil, statkiterr.InvalidArgument("definition ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.defs[id]
	if !exists {
		return nil, statkiterr.NotFoundf("definition %q not found", id)
	}

	out := *def
	return &out, nil
}

// Update replaces an existing definition
func (r *InMemoryRepository) Update(ctx context.Context, def *Definition) error {
	if def == nil {
		return statkiterr.InvalidArgument("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.defs[def.ID]
	if !exists {
		return statkiterr.NotFoundf("definition %q not found", def.ID)
	}

	def.CreatedAt = existing.CreatedAt
	def.UpdatedAt = r.timeProvider.Now()

	stored := *def
	r.defs[def.ID] = &stored
	return nil
}

// Delete removes a definition by ID
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return statkiterr.InvalidArgument("definition ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[id]; !exists {
		return statkiterr.NotFoundf("definition %q not found", id)
	}
	delete(r.defs, id)
	return nil
}

// List returns all definitions
func (r *InMemoryRepository) List(ctx context.Context) ([]*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Definition, 0, len(r.defs))
	for _, def := range r.defs {
		d := *def
		out = append(out, &d)
	}
	return out, nil
}
