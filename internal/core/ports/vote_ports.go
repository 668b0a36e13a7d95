package ports

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type VoteRepository interface {
	// Insert writes the vote unless one already exists for the same
	// (edition, category, voter). The error is non-nil only for InsertFailed.
	Insert(ctx context.Context, vote *domain.Vote) (domain.InsertOutcome, error)
}

type SubmitVoteInput struct {
	VoterID    string
	CategoryID string
	NomineeID  string
}

type VoteService interface {
	SubmitVote(ctx context.Context, input SubmitVoteInput) (*domain.Vote, error)
}
