package hotelpager

import (
	"github.com/samber/lo"
)

// PaginationState is what a list view keeps about the page it displays.
//
// Invariant: FirstPage <= CurrentPage <= TotalPages. Methods that change the
// page never break it; requests outside the range are ignored.
type PaginationState struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	ItemsPerPage  int   `json:"itemsPerPage"`
}

// NewPaginationState returns the state of an empty view showing itemsPerPage
// rows per page. A non-positive itemsPerPage falls back to DefaultPageSize.
func NewPaginationState(itemsPerPage int) *PaginationState {
	return &PaginationState{
		CurrentPage:   FirstPage,
		TotalPages:    FirstPage,
		TotalElements: 0,
		ItemsPerPage:  lo.Ternary(itemsPerPage > 0, itemsPerPage, DefaultPageSize),
	}
}

// Refresh applies totals reported by a fetch. A server reporting zero pages
// is treated as one empty page. If the dataset shrank below the current page,
// the current page moves to the new last page.
func (s *PaginationState) Refresh(totalPages int, totalElements int64) *PaginationState {
	if s == nil {
		s = NewPaginationState(DefaultPageSize)
	}

	s.TotalPages = max(totalPages, FirstPage)
	s.TotalElements = max(totalElements, 0)
	s.CurrentPage = lo.Clamp(s.CurrentPage, FirstPage, s.TotalPages)

	return s
}

// RefreshFromTotal is Refresh for endpoints that only report a row count.
func (s *PaginationState) RefreshFromTotal(totalElements int64) *PaginationState {
	if s == nil {
		s = NewPaginationState(DefaultPageSize)
	}

	return s.Refresh(TotalPagesFor(totalElements, s.ItemsPerPage), totalElements)
}

// SetPage moves to page if FirstPage <= page <= TotalPages and reports whether
// it did. Any other request is a no-op.
func (s *PaginationState) SetPage(page int) bool {
	if s == nil || page < FirstPage || page > s.TotalPages {
		return false
	}

	s.CurrentPage = page

	return true
}

// Next moves one page forward if possible.
func (s *PaginationState) Next() bool {
	return s.HasNext() && s.SetPage(s.CurrentPage+1)
}

// Prev moves one page back if possible.
func (s *PaginationState) Prev() bool {
	return s.HasPrev() && s.SetPage(s.CurrentPage-1)
}

func (s *PaginationState) HasNext() bool {
	return s != nil && s.CurrentPage < s.TotalPages
}

func (s *PaginationState) HasPrev() bool {
	return s != nil && s.CurrentPage > FirstPage
}

// Offset returns the number of rows preceding the current page.
func (s *PaginationState) Offset() int {
	if s == nil {
		return 0
	}

	return (s.CurrentPage - 1) * s.ItemsPerPage
}

// Range returns the 1-indexed bounds of the rows shown on the current page,
// as in "Showing from–to of TotalElements". Both are 0 for an empty dataset.
func (s *PaginationState) Range() (from, to int64) {
	if s == nil || s.TotalElements <= 0 {
		return 0, 0
	}

	from = int64(s.Offset()) + 1
	if from > s.TotalElements {
		return 0, 0
	}
	to = min(from+int64(s.ItemsPerPage)-1, s.TotalElements)

	return from, to
}

// Window computes the page tokens for the current state.
func (s *PaginationState) Window(maxVisible int) Window {
	if s == nil {
		return ComputeWindow(FirstPage, FirstPage, maxVisible)
	}

	return ComputeWindow(s.CurrentPage, s.TotalPages, maxVisible)
}
