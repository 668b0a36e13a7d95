package domain

import "errors"

var (
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrMissingFields            = errors.New("categoryId and nomineeId are required")
	ErrNomineeNotFound          = errors.New("nominee not found")
	ErrInvalidNomineeOrCategory = errors.New("nominee does not belong to category")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrMissingEdition           = errors.New("category has no edition")
	ErrAlreadyVoted             = errors.New("user has already voted in this category")
)

// StorageError is returned when the vote store rejects a write for any reason
// other than the one-vote-per-category constraint. Message holds the store's
// own description when it provided one.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "storage error"
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
