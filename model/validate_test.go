package model

import (
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func validBooking() *Booking {
	checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	return &Booking{
		GuestName: "Ada Lovelace",
		RoomID:    12,
		CheckIn:   checkIn,
		CheckOut:  checkIn.Add(48 * time.Hour),
		Guests:    2,
		Status:    "confirmed",
	}
}

func Test_Validate_Booking(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(b *Booking)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(*Booking) {},
		},
		{
			name:       "missing guest",
			mutate:     func(b *Booking) { b.GuestName = "" },
			wantFields: []string{"guestName"},
		},
		{
			name:       "check out before check in",
			mutate:     func(b *Booking) { b.CheckOut = b.CheckIn.Add(-time.Hour) },
			wantFields: []string{"checkOut"},
		},
		{
			name: "several problems at once",
			mutate: func(b *Booking) {
				b.Guests = 0
				b.Status = "lost"
				b.GuestEmail = "not-an-email"
			},
			wantFields: []string{"guestEmail", "guests", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := Validate(b)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.ElementsMatch(t, tt.wantFields, lo.Map(vErr.Fields, func(f FieldError, _ int) string { return f.Field }))
		})
	}
}

func Test_Validate_MaintenanceNeedsTarget(t *testing.T) {
	m := &MaintenanceSchedule{
		Task:        "Replace boiler valve",
		ScheduledAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		Status:      "scheduled",
	}

	err := Validate(m)
	require.ErrorContains(t, err, "'assetId' failed 'required_without=RoomID'")

	m.RoomID = lo.ToPtr[uint](101)
	require.NoError(t, Validate(m))
}

func Test_Validate_NonStruct(t *testing.T) {
	err := Validate(42)
	require.Error(t, err)

	var vErr *ValidationError
	require.False(t, errors.As(err, &vErr))
}

func Test_InventoryItem_BelowReorderLevel(t *testing.T) {
	require.True(t, InventoryItem{Quantity: 3, ReorderLevel: 5}.BelowReorderLevel())
	require.True(t, InventoryItem{Quantity: 5, ReorderLevel: 5}.BelowReorderLevel())
	require.False(t, InventoryItem{Quantity: 6, ReorderLevel: 5}.BelowReorderLevel())
}

func Test_LookupResource(t *testing.T) {
	r, err := LookupResource("rooms")
	require.NoError(t, err)
	require.Equal(t, Rooms.Name, r.Name)
	require.Equal(t, "rooms.id", r.DefaultOrder().Column)

	_, err = LookupResource("guests")
	require.ErrorContains(t, err, "unknown resource")
}

func Test_Resources_SortColumnsAreQualified(t *testing.T) {
	for _, r := range Resources {
		for alias, column := range r.Sort {
			require.Truef(t, len(column) > len(r.Name) && column[:len(r.Name)+1] == r.Name+".",
				"%s: alias %s maps to unqualified column %s", r.Name, alias, column)
		}
	}
}
