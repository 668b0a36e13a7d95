package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type voteKey struct {
	editionID  string
	categoryID string
	voterID    string
}

// Store is an in-process catalog and vote store. Inserts are checked against
// the (edition, category, voter) key under the same lock that writes them.
type Store struct {
	mu sync.RWMutex

	nominees   map[string]domain.Nominee
	categories map[string]domain.Category
	votes      map[voteKey]domain.Vote
}

// Seed is the on-disk catalog format accepted by LoadSeed.
type Seed struct {
	Categories []domain.Category `json:"categories"`
	Nominees   []domain.Nominee  `json:"nominees"`
}

func NewStore() *Store {
	return &Store{
		nominees:   make(map[string]domain.Nominee),
		categories: make(map[string]domain.Category),
		votes:      make(map[voteKey]domain.Vote),
	}
}

func NewStoreFromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog seed: %w", err)
	}
	defer f.Close()

	store := NewStore()
	if err := store.LoadSeed(f); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode catalog seed: %w", err)
	}
	for _, category := range seed.Categories {
		s.SetCategory(category)
	}
	for _, nominee := range seed.Nominees {
		s.SetNominee(nominee)
	}
	return nil
}

func (s *Store) SetCategory(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = category
}

func (s *Store) SetNominee(nominee domain.Nominee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominees[nominee.ID] = nominee
}

func (s *Store) GetNominee(ctx context.Context, id string) (*domain.Nominee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	nominee, ok := s.nominees[id]
	if !ok {
		return nil, domain.ErrNomineeNotFound
	}
	return &nominee, nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &category, nil
}

func (s *Store) Insert(ctx context.Context, vote *domain.Vote) (domain.InsertOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.InsertFailed, err
	}
	if strings.TrimSpace(vote.VoterID) == "" || vote.EditionID == "" {
		return domain.InsertFailed, &domain.StorageError{Message: "vote is missing voter_id or edition_id"}
	}

	key := voteKey{editionID: vote.EditionID, categoryID: vote.CategoryID, voterID: vote.VoterID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.votes[key]; exists {
		return domain.InsertConflict, nil
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = time.Now().UTC()
	}
	s.votes[key] = *vote
	return domain.InsertAccepted, nil
}

// Votes returns every stored vote ordered by creation time.
func (s *Store) Votes() []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]domain.Vote, 0, len(s.votes))
	for _, vote := range s.votes {
		votes = append(votes, vote)
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].CreatedAt.Before(votes[j].CreatedAt)
	})
	return votes
}

var (
	_ ports.CatalogRepository = (*Store)(nil)
	_ ports.VoteRepository    = (*Store)(nil)
)
