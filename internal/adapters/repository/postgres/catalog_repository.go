package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) ports.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (r *catalogRepository) GetNominee(ctx context.Context, id string) (*domain.Nominee, error) {
	query := `SELECT id, category_id FROM nominees WHERE id = $1`

	var nominee domain.Nominee
	err := r.db.QueryRowContext(ctx, query, id).Scan(&nominee.ID, &nominee.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNomineeNotFound
		}
		return nil, fmt.Errorf("failed to get nominee: %w", err)
	}
	return &nominee, nil
}

func (r *catalogRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, edition_id FROM categories WHERE id = $1`

	var (
		category  domain.Category
		editionID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &editionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	category.EditionID = editionID.String
	return &category, nil
}
