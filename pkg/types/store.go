package types

// Store is a retail location. Reference data: it arrives from the remote
// bulk fetch or from the built-in fallback list and is rarely mutated.
type Store struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name"`
}

// Key returns the primary key used for merge deduplication.
func (s Store) Key() string { return s.Code }

// Validate checks that the store satisfies the entity schema.
func (s Store) Validate() error { return validateEntity(s) }
