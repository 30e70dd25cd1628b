package statdefs

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jfandel/statkit/internal/repositories/statdefs Repository

// Repository defines the interface for stat definition storage
type Repository interface {
	Create(ctx context.Context, def *Definition) error
	Get(ctx context.Context, id string) (*Definition, error)
	Update(ctx context.Context, def *Definition) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Definition, error)
}
