// Package registry composes the definition repository with a live
// StatSystem: definitions go in through SaveDefinition, live stats come out
// through Materialize.
package registry

//go:generate mockgen -destination=mock/mock_service.go -package=mockregistry -source=service.go

import (
	"context"

	statkiterr "github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/repositories/statdefs"
	"github.com/jfandel/statkit/internal/stats"
)

// Service defines the stat registry interface
type Service interface {
	// SaveDefinition validates and stores a stat definition
	SaveDefinition(ctx context.Context, input *SaveDefinitionInput) (*statdefs.Definition, error)

	// GetDefinition retrieves a stored definition by ID
	GetDefinition(ctx context.Context, id string) (*statdefs.Definition, error)

	// ListDefinitions returns all stored definitions
	ListDefinitions(ctx context.Context) ([]*statdefs.Definition, error)

	// DeleteDefinition removes a stored definition
	DeleteDefinition(ctx context.Context, id string) error

	// Materialize constructs a live stat in the system from a stored
	// definition, attaching any preset modifiers
	Materialize(ctx context.Context, id string) (stats.NamedStat, error)
}

// SaveDefinitionInput contains data for creating a definition
type SaveDefinitionInput struct {
	Name      string
	Kind      statdefs.Kind
	Base      float64
	Min       float64
	Max       float64
	Modifiers []statdefs.ModifierDef
}

// service implements the Service interface
type service struct {
	repository statdefs.Repository
	system     *stats.System
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository statdefs.Repository // Required
	System     *stats.System       // Required
}

// NewService creates a new registry service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.System == nil {
		panic("system is required")
	}

	return &service{
		repository: cfg.Repository,
		system:     cfg.System,
	}
}

// SaveDefinition validates and stores a stat definition
func (s *service) SaveDefinition(ctx context.Context, input *SaveDefinitionInput) (*statdefs.Definition, error) {
	if input == nil {
		return nil, statkiterr.InvalidArgument("input cannot be nil")
	}

	def := &statdefs.Definition{
		Name:      input.Name,
		Kind:      input.Kind,
		Base:      input.Base,
		Min:       input.Min,
		Max:       input.Max,
		Modifiers: input.Modifiers,
	}
	if err := s.repository.Create(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

// GetDefinition retrieves a stored definition by ID
func (s *service) GetDefinition(ctx context.Context, id string) (*statdefs.Definition, error) {
	return s.repository.Get(ctx, id)
}

// ListDefinitions returns all stored definitions
func (s *service) ListDefinitions(ctx context.Context) ([]*statdefs.Definition, error) {
	return s.repository.List(ctx)
}

// DeleteDefinition removes a stored definition
func (s *service) DeleteDefinition(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

// Materialize constructs a live stat in the system from a stored definition
func (s *service) Materialize(ctx context.Context, id string) (stats.NamedStat, error) {
	def, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, exists := s.system.Get(def.Name); exists {
		return nil, statkiterr.InvalidArgumentf("stat %q already exists in system", def.Name).
			WithMeta("definition_id", def.ID)
	}

	var st stats.NamedStat
	switch def.Kind {
	case statdefs.KindPlain:
		st = s.system.NewStat(def.Name, def.Base)
	case statdefs.KindConstant:
		st = s.system.NewConstantStat(def.Name, def.Base)
	case statdefs.KindFloor:
		st = s.system.NewFloorStat(def.Name, def.Base, def.Min)
	case statdefs.KindRange:
		st = s.system.NewRangeStat(def.Name, def.Base, def.Min, def.Max)
	case statdefs.KindElastic:
		st = s.system.NewElasticStat(def.Name, def.Base)
	default:
		return nil, statkiterr.InvalidArgumentf("unknown stat kind %q", def.Kind)
	}

	if len(def.Modifiers) > 0 {
		target, ok := st.Value().(stats.ModifierTarget)
		if !ok {
			return nil, statkiterr.InvalidArgumentf("stat %q does not accept modifiers", def.Name)
		}
		for _, md := range def.Modifiers {
			target.AddModifier(s.system.NewModifier(target, md.Amount, md.Origin, md.Priority))
		}
	}

	return st, nil
}
