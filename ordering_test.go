package hotelpager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name    string
		keys    Orderings
		wantErr string
	}{
		{"no keys", Orderings{}, "no sort keys"},
		{"lowercase direction", Orderings{{Column: "id", Direction: "asc"}}, "unknown sort direction"},
		{"blank column", Orderings{{Column: "", Direction: DirectionASC}}, "sort column is empty"},
		{"injection attempt", Orderings{{Column: "id; DROP TABLE rooms", Direction: DirectionASC}}, "characters outside"},
		{"second key reported by position", Orderings{{Column: "id", Direction: DirectionASC}, {Column: "a b", Direction: DirectionASC}}, "sort key #2"},
		{"qualified and quoted columns", Orderings{{Column: `"rooms".floor`, Direction: DirectionDESC}, {Column: "rooms.id", Direction: DirectionASC}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func Test_Orderings_Render(t *testing.T) {
	keys := Orderings{
		{Column: "check_in", Direction: DirectionDESC},
		{Column: "id", Direction: DirectionASC},
	}

	require.Equal(t, "check_in DESC", keys[0].String())
	require.Equal(t, []string{"check_in DESC", "id ASC"}, keys.ToSQLSlice())
	require.Equal(t, "check_in DESC, id ASC", keys.ToSQL())
	require.Empty(t, Orderings(nil).ToSQL())
}

func Test_Orderings_Apply(t *testing.T) {
	for _, dm := range newDialectMocks(t) {
		dm.mock.ExpectQuery("^SELECT \\* FROM " + fmt.Sprintf(tQuoted, "bookings") + " ORDER BY status DESC, id ASC$").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		dm.mock.ExpectQuery("^SELECT \\* FROM " + fmt.Sprintf(tQuoted, "bookings") + "$").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		sorted := Orderings{{Column: "status", Direction: DirectionDESC}, {Column: "id", Direction: DirectionASC}}
		require.NoError(t, sorted.Apply(dm.db.Table("bookings")).Find(&[]tRoom{}).Error, dm.name)
		require.NoError(t, Orderings(nil).Apply(dm.db.Table("bookings")).Find(&[]tRoom{}).Error, dm.name)

		assert.NoError(t, dm.mock.ExpectationsWereMet(), dm.name)
	}
}

func Test_ParseSort(t *testing.T) {
	mapping := ColumnMapping{
		"id":     "bookings.id",
		"guest":  "bookings.guest_name",
		"status": "bookings.status",
	}

	tests := []struct {
		name    string
		keys    []string
		want    Orderings
		wantErr bool
	}{
		{name: "nothing requested", keys: nil, want: Orderings{}},
		{name: "bare alias is ascending", keys: []string{"guest"}, want: Orderings{{Column: "bookings.guest_name", Direction: DirectionASC}}},
		{name: "dash prefix is descending", keys: []string{"-status"}, want: Orderings{{Column: "bookings.status", Direction: DirectionDESC}}},
		{name: "spelled out directions", keys: []string{" status DESC ", "id asc"}, want: Orderings{
			{Column: "bookings.status", Direction: DirectionDESC},
			{Column: "bookings.id", Direction: DirectionASC},
		}},
		{name: "three words", keys: []string{"id asc please"}, wantErr: true},
		{name: "blank key", keys: []string{"   "}, wantErr: true},
		{name: "bad direction", keys: []string{"id up"}, wantErr: true},
		{name: "unknown alias", keys: []string{"idx"}, wantErr: true},
		{name: "one bad key fails all", keys: []string{"id", "-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.keys, mapping)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_ParseSort_UnknownAlias(t *testing.T) {
	mapping := ColumnMapping{"guest": "guest_name", "room": "room_id", "checkIn": "check_in"}

	tests := []struct {
		key            string
		wantSuggestion string
		wantMessage    string
	}{
		{"gest desc", "guest", "unknown sort alias 'gest', did you mean 'guest'?"},
		{"-rom", "room", "unknown sort alias 'rom', did you mean 'room'?"},
		{"checkin", "checkIn", "unknown sort alias 'checkin', did you mean 'checkIn'?"},
		{"price", "", "unknown sort alias 'price'"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := ParseSort([]string{tt.key}, mapping)

			var aliasErr *UnknownSortAliasError
			require.True(t, errors.As(err, &aliasErr))
			require.Equal(t, tt.wantSuggestion, aliasErr.Suggestion)
			require.EqualError(t, err, tt.wantMessage)
		})
	}
}

func Test_suggestAlias(t *testing.T) {
	tests := []struct {
		name  string
		input string
		known []string
		want  string
	}{
		{"one edit away", "nme", []string{"id", "name", "created_at"}, "name"},
		{"missing underscore", "createdat", []string{"id", "name", "created_at"}, "created_at"},
		{"tie goes to alphabetical first", "ab", []string{"ac", "aa"}, "aa"},
		{"too far away", "zzzzzz", []string{"id"}, ""},
		{"nothing known", "id", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, suggestAlias(tt.input, tt.known))
		})
	}
}
