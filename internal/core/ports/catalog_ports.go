package ports

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type CatalogRepository interface {
	GetNominee(ctx context.Context, id string) (*domain.Nominee, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
}
