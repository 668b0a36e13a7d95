package domain

type Nominee struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
}

// Category.EditionID is empty when the stored edition is null.
type Category struct {
	ID        string `json:"id"`
	EditionID string `json:"edition_id,omitempty"`
}
