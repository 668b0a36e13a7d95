package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type voteService struct {
	catalogRepo ports.CatalogRepository
	voteRepo    ports.VoteRepository
}

func NewVoteService(catalogRepo ports.CatalogRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		catalogRepo: catalogRepo,
		voteRepo:    voteRepo,
	}
}

// SubmitVote validates the nominee against the category, resolves the
// category's edition and records the vote. Duplicate votes are rejected by the
// vote store, never by a prior read.
func (s *voteService) SubmitVote(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
	if input.CategoryID == "" || input.NomineeID == "" {
		return nil, domain.ErrMissingFields
	}

	nominee, err := s.catalogRepo.GetNominee(ctx, input.NomineeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidNomineeOrCategory, err)
	}
	if nominee == nil || nominee.CategoryID != input.CategoryID {
		return nil, domain.ErrInvalidNomineeOrCategory
	}

	category, err := s.catalogRepo.GetCategory(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCategoryNotFound, err)
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if category.EditionID == "" {
		return nil, domain.ErrMissingEdition
	}

	vote := &domain.Vote{
		ID:         uuid.New(),
		VoterID:    input.VoterID,
		EditionID:  category.EditionID,
		CategoryID: input.CategoryID,
		NomineeID:  input.NomineeID,
		CreatedAt:  time.Now(),
	}

	outcome, err := s.voteRepo.Insert(ctx, vote)
	switch outcome {
	case domain.InsertAccepted:
		return vote, nil
	case domain.InsertConflict:
		return nil, domain.ErrAlreadyVoted
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return nil, storageErr
	}
	return nil, &domain.StorageError{Err: err}
}
