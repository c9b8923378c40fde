// Package demo holds the built-in demonstration dataset and the static store
// fallback list. The session manager seeds from here when a demo session
// starts with empty local collections.
package demo

import (
	"time"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// Reserved demo identities and defaults.
const (
	StaffID      = "DEMO-STAFF"
	AdminStaffID = "admin_user"
	DefaultStore = "C42"
	Code         = "DEMO"
)

// Stores is the static fallback store list, used until a bulk fetch supplies
// a server-provided one.
func Stores() []types.Store {
	return []types.Store{
		{Code: "C04", Name: "Carrefour City Centre Deira"},
		{Code: "C16", Name: "Carrefour Mall of the Emirates"},
		{Code: "C42", Name: "Carrefour City Centre Mirdif"},
	}
}

// Staff returns the demonstration staff records.
func Staff() []types.Staff {
	return []types.Staff{
		{StaffID: StaffID, Name: "Demo Staff", StoreID: DefaultStore},
		{StaffID: AdminStaffID, Name: "Admin", StoreID: DefaultStore},
	}
}

// AccessCodes returns the demonstration access codes.
func AccessCodes(now time.Time) []types.AccessCode {
	return []types.AccessCode{
		{Code: Code, StaffID: StaffID, StoreCode: DefaultStore, CreatedAt: now.UnixMilli()},
	}
}

// Items returns the demonstration items. Expiry dates are relative to now so
// the dataset always shows one expired, one expiring, and fresher stock.
func Items(now time.Time) []types.Item {
	date := func(days int) string {
		return now.AddDate(0, 0, days).Format(types.ExpirationDateLayout)
	}
	return []types.Item{
		{
			ItemID:           "item_demo_1",
			Name:             "Almarai Fresh Milk",
			Category:         "Dairy",
			ExpirationDate:   date(5),
			NotificationDays: 7,
			Quantity:         15,
			AddedByStaffID:   StaffID,
			StoreCode:        "C42",
		},
		{
			ItemID:           "item_demo_2",
			Name:             "Sliced Bread",
			Category:         "Bakery",
			ExpirationDate:   date(-2),
			NotificationDays: 3,
			Quantity:         4,
			AddedByStaffID:   StaffID,
			StoreCode:        "C42",
		},
		{
			ItemID:           "item_demo_3",
			Name:             "Cheddar Cheese",
			Category:         "Dairy",
			ExpirationDate:   date(10),
			NotificationDays: 10,
			Quantity:         20,
			AddedByStaffID:   StaffID,
			StoreCode:        "C16",
		},
		{
			ItemID:           "item_demo_4",
			Name:             "Orange Juice",
			Category:         "Beverages",
			ExpirationDate:   date(30),
			NotificationDays: 10,
			Quantity:         12,
			AddedByStaffID:   StaffID,
			StoreCode:        "C42",
		},
	}
}
