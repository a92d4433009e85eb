package hotelpager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewPaginationState(t *testing.T) {
	s := NewPaginationState(25)
	require.Equal(t, &PaginationState{CurrentPage: 1, TotalPages: 1, TotalElements: 0, ItemsPerPage: 25}, s)

	require.Equal(t, DefaultPageSize, NewPaginationState(0).ItemsPerPage)
	require.Equal(t, DefaultPageSize, NewPaginationState(-4).ItemsPerPage)
}

func Test_PaginationState_SetPage(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		applied bool
		want    int
	}{
		{"first page", 1, true, 1},
		{"last page", 7, true, 7},
		{"middle page", 4, true, 4},
		{"zero ignored", 0, false, 3},
		{"negative ignored", -2, false, 3},
		{"past the end ignored", 8, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PaginationState{CurrentPage: 3, TotalPages: 7, TotalElements: 70, ItemsPerPage: 10}

			require.Equal(t, tt.applied, s.SetPage(tt.page))
			require.Equal(t, tt.want, s.CurrentPage)
		})
	}

	require.False(t, (*PaginationState)(nil).SetPage(1))
}

func Test_PaginationState_Refresh(t *testing.T) {
	tests := []struct {
		name          string
		state         PaginationState
		totalPages    int
		totalElements int64
		want          PaginationState
	}{
		{
			name:          "keeps current page within range",
			state:         PaginationState{CurrentPage: 2, TotalPages: 1, ItemsPerPage: 10},
			totalPages:    5,
			totalElements: 45,
			want:          PaginationState{CurrentPage: 2, TotalPages: 5, TotalElements: 45, ItemsPerPage: 10},
		},
		{
			name:          "dataset shrank below current page",
			state:         PaginationState{CurrentPage: 5, TotalPages: 5, TotalElements: 41, ItemsPerPage: 10},
			totalPages:    4,
			totalElements: 40,
			want:          PaginationState{CurrentPage: 4, TotalPages: 4, TotalElements: 40, ItemsPerPage: 10},
		},
		{
			name:          "no items is one empty page",
			state:         PaginationState{CurrentPage: 3, TotalPages: 3, TotalElements: 21, ItemsPerPage: 10},
			totalPages:    0,
			totalElements: 0,
			want:          PaginationState{CurrentPage: 1, TotalPages: 1, TotalElements: 0, ItemsPerPage: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			s.Refresh(tt.totalPages, tt.totalElements)
			require.Equal(t, tt.want, s)
		})
	}
}

func Test_PaginationState_RefreshFromTotal(t *testing.T) {
	s := NewPaginationState(10).RefreshFromTotal(101)
	require.Equal(t, 11, s.TotalPages)
	require.Equal(t, int64(101), s.TotalElements)

	s = (*PaginationState)(nil).RefreshFromTotal(0)
	require.Equal(t, 1, s.TotalPages)
}

func Test_PaginationState_Navigation(t *testing.T) {
	s := NewPaginationState(10).Refresh(3, 25)

	assert.False(t, s.HasPrev())
	assert.False(t, s.Prev())
	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.Equal(t, 3, s.CurrentPage)
	assert.False(t, s.HasNext())
	assert.False(t, s.Next())
	assert.Equal(t, 3, s.CurrentPage)
	assert.True(t, s.Prev())
	assert.Equal(t, 2, s.CurrentPage)
}

func Test_PaginationState_Range(t *testing.T) {
	tests := []struct {
		name     string
		state    *PaginationState
		from, to int64
	}{
		{"nil state", nil, 0, 0},
		{"empty dataset", &PaginationState{CurrentPage: 1, TotalPages: 1, ItemsPerPage: 10}, 0, 0},
		{"first page", &PaginationState{CurrentPage: 1, TotalPages: 3, TotalElements: 25, ItemsPerPage: 10}, 1, 10},
		{"partial last page", &PaginationState{CurrentPage: 3, TotalPages: 3, TotalElements: 25, ItemsPerPage: 10}, 21, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.state.Range()
			require.Equal(t, tt.from, from)
			require.Equal(t, tt.to, to)
		})
	}
}

func Test_PaginationState_Window(t *testing.T) {
	s := &PaginationState{CurrentPage: 10, TotalPages: 20, TotalElements: 200, ItemsPerPage: 10}
	require.Equal(t, "1 … 8 9 10 11 12 … 20", s.Window(5).String())
	require.Equal(t, "1", (*PaginationState)(nil).Window(5).String())
}

func Test_PaginationState_Controls(t *testing.T) {
	s := &PaginationState{CurrentPage: 10, TotalPages: 20, TotalElements: 195, ItemsPerPage: 10}
	c := s.Controls(5)

	require.True(t, c.HasPrev)
	require.True(t, c.HasNext)
	require.Equal(t, "Showing 91–100 of 195", c.Summary())
	require.Equal(t, "‹ 1 … 8 9 [10] 11 12 … 20 ›", c.String())

	for _, item := range c.Items {
		switch {
		case item.Token.IsEllipsis():
			require.True(t, item.Disabled, "ellipsis must be disabled")
			require.False(t, item.Current)
		case item.Token.Page() == 10:
			require.True(t, item.Current)
			require.True(t, item.Disabled, "current page must be disabled")
		default:
			require.False(t, item.Current)
			require.False(t, item.Disabled)
		}
	}

	single := NewPaginationState(10).Controls(5)
	require.Equal(t, "[1]", single.String())
	require.Equal(t, "Showing 0–0 of 0", single.Summary())
}
