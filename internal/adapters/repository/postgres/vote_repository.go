package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

// oneVotePerCategory is the unique constraint over (edition_id, category_id, voter_id).
const oneVotePerCategory = "votes_one_per_category"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Insert(ctx context.Context, vote *domain.Vote) (domain.InsertOutcome, error) {
	query := `
		INSERT INTO votes (id, voter_id, edition_id, category_id, nominee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		vote.ID, vote.VoterID, vote.EditionID, vote.CategoryID, vote.NomineeID,
	).Scan(&vote.CreatedAt)
	if err == nil {
		return domain.InsertAccepted, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if isOneVotePerCategoryViolation(pqErr) {
			return domain.InsertConflict, nil
		}
		return domain.InsertFailed, &domain.StorageError{Message: pqErr.Message, Err: err}
	}
	return domain.InsertFailed, fmt.Errorf("failed to save vote: %w", err)
}

func isOneVotePerCategoryViolation(err *pq.Error) bool {
	return err.Code.Name() == "unique_violation" && err.Constraint == oneVotePerCategory
}
