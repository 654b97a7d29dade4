package ports

import (
	"context"

	"github.com/aretw0/primer/pkg/domain"
)

// StatelessEngine is the part of the engine a driver loop needs.
type StatelessEngine interface {
	Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error)
	Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error)
}
