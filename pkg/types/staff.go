package types

// Staff is a store employee. A staff record is created implicitly when an
// access code is issued for it, and removed when that code is deleted.
type Staff struct {
	StaffID string `json:"staffId" validate:"required"`
	Name    string `json:"name"`
	StoreID string `json:"storeId"`
}

// Key returns the primary key used for merge deduplication.
func (s Staff) Key() string { return s.StaffID }

// Validate checks that the staff record satisfies the entity schema.
func (s Staff) Validate() error { return validateEntity(s) }
