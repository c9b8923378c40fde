package types

import "strings"

// AccessCode authenticates a staff member. Codes are globally unique under
// case-insensitive comparison; lookups normalize to upper case. Deleting a
// code also deletes the staff member's identity.
type AccessCode struct {
	Code      string `json:"code" validate:"required"`
	StaffID   string `json:"staffId" validate:"required"`
	StoreCode string `json:"storeCode"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Key returns the normalized code, so two spellings of the same code
// deduplicate during a merge.
func (c AccessCode) Key() string { return NormalizeCode(c.Code) }

// Validate checks that the access code satisfies the entity schema.
func (c AccessCode) Validate() error { return validateEntity(c) }

// NormalizeCode canonicalizes a submitted access code for comparison:
// surrounding whitespace is dropped and the code is uppercased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
