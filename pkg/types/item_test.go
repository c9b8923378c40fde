package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemExpiryState(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name             string
		expirationDate   string
		notificationDays int
		want             string
	}{
		{
			name:           "past date is expired",
			expirationDate: "2026-03-14",
			want:           ExpiryExpired,
		},
		{
			name:             "today counts as expiring",
			expirationDate:   "2026-03-15",
			notificationDays: 0,
			want:             ExpiryExpiring,
		},
		{
			name:             "inside lead time is expiring",
			expirationDate:   "2026-03-20",
			notificationDays: 7,
			want:             ExpiryExpiring,
		},
		{
			name:             "boundary of lead time is expiring",
			expirationDate:   "2026-03-22",
			notificationDays: 7,
			want:             ExpiryExpiring,
		},
		{
			name:             "beyond lead time is fresh",
			expirationDate:   "2026-03-23",
			notificationDays: 7,
			want:             ExpiryFresh,
		},
		{
			name:           "unparseable date is unknown",
			expirationDate: "15/03/2026",
			want:           ExpiryUnknown,
		},
		{
			name:           "empty date is unknown",
			expirationDate: "",
			want:           ExpiryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := Item{
				ItemID:           "item_1",
				Name:             "Milk",
				ExpirationDate:   tt.expirationDate,
				NotificationDays: tt.notificationDays,
			}
			assert.Equal(t, tt.want, i.ExpiryState(now))
		})
	}
}

func TestItemValidate(t *testing.T) {
	valid := Item{
		ItemID:         "item_1",
		Name:           "Milk",
		ExpirationDate: "2026-03-20",
		Quantity:       3,
	}
	assert.NoError(t, valid.Validate())

	missingID := valid
	missingID.ItemID = ""
	assert.ErrorIs(t, missingID.Validate(), ErrMalformedState)

	negativeQty := valid
	negativeQty.Quantity = -1
	assert.ErrorIs(t, negativeQty.Validate(), ErrMalformedState)
}
