package types

import "time"

// ExpirationDateLayout is the wire format of Item.ExpirationDate.
const ExpirationDateLayout = "2006-01-02"

// Expiry states derived from an item's expiration date and lead time.
const (
	ExpiryExpired  = "expired"
	ExpiryExpiring = "expiring"
	ExpiryFresh    = "fresh"
	ExpiryUnknown  = "unknown"
)

// Item is a tracked inventory record. Ownership is the staff member who
// created it; scoping to a store happens through StoreCode.
type Item struct {
	ItemID           string `json:"itemId" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Category         string `json:"category"`
	ExpirationDate   string `json:"expirationDate" validate:"required"` // YYYY-MM-DD
	NotificationDays int    `json:"notificationDays" validate:"gte=0"`
	Quantity         int    `json:"quantity" validate:"gte=0"`
	ImageURL         string `json:"imageUrl,omitempty"`
	AddedByStaffID   string `json:"addedByStaffId"`
	StoreCode        string `json:"storeCode"`
}

// Key returns the primary key used for merge deduplication.
func (i Item) Key() string { return i.ItemID }

// Validate checks that the item satisfies the entity schema.
func (i Item) Validate() error { return validateEntity(i) }

// ExpiryState classifies the item relative to now: already expired, expiring
// within the notification lead time, or fresh. A date that does not parse
// yields ExpiryUnknown rather than an error; the record is still usable.
func (i Item) ExpiryState(now time.Time) string {
	exp, err := time.Parse(ExpirationDateLayout, i.ExpirationDate)
	if err != nil {
		return ExpiryUnknown
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if exp.Before(today) {
		return ExpiryExpired
	}
	if !exp.After(today.AddDate(0, 0, i.NotificationDays)) {
		return ExpiryExpiring
	}
	return ExpiryFresh
}
