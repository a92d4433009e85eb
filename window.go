package hotelpager

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// EllipsisMark is how an ellipsis token renders.
const EllipsisMark = "…"

// PageToken is one rendered unit of a pagination control: either a selectable
// page number or a non-interactive ellipsis standing for an elided run of pages.
//
// The zero value is the ellipsis.
type PageToken struct {
	page int
}

// Ellipsis is the ellipsis token.
var Ellipsis = PageToken{}

// PageNumber returns a token for page n (1-indexed).
func PageNumber(n int) PageToken {
	return PageToken{page: n}
}

// IsEllipsis reports whether the token is an ellipsis marker.
func (t PageToken) IsEllipsis() bool {
	return t.page < 1
}

// Page returns the page number, or 0 for an ellipsis.
func (t PageToken) Page() int {
	if t.IsEllipsis() {
		return 0
	}

	return t.page
}

// String - implements fmt.Stringer.
func (t PageToken) String() string {
	if t.IsEllipsis() {
		return EllipsisMark
	}

	return strconv.Itoa(t.page)
}

// MarshalJSON encodes a page as a number and an ellipsis as EllipsisMark.
func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.IsEllipsis() {
		return json.Marshal(EllipsisMark)
	}

	return []byte(strconv.Itoa(t.page)), nil
}

// UnmarshalJSON - implements json.Unmarshaler.
func (t *PageToken) UnmarshalJSON(data []byte) error {
	var page int
	if err := json.Unmarshal(data, &page); err == nil {
		if page < FirstPage {
			return fmt.Errorf("invalid page token %d", page)
		}

		*t = PageNumber(page)

		return nil
	}

	var mark string
	if err := json.Unmarshal(data, &mark); err != nil || mark != EllipsisMark {
		return fmt.Errorf("invalid page token %s", data)
	}

	*t = Ellipsis

	return nil
}

// Window is an ordered sequence of page tokens as produced by ComputeWindow.
type Window []PageToken

// Pages returns the page numbers of the window, skipping ellipses.
func (w Window) Pages() []int {
	return lo.FilterMap(w, func(t PageToken, _ int) (int, bool) {
		return t.Page(), !t.IsEllipsis()
	})
}

// Contains reports whether page is rendered as a selectable token.
func (w Window) Contains(page int) bool {
	return page >= 1 && lo.Contains(w, PageNumber(page))
}

// String renders the window as space separated tokens, e.g. "1 … 8 9 10 … 20".
func (w Window) String() string {
	return strings.Join(lo.Map(w, func(t PageToken, _ int) string { return t.String() }), " ")
}

// ComputeWindow produces the page-selector tokens to render for a pagination
// control.
//
// When every page fits (totalPages <= maxVisible) all pages are returned in
// order. Otherwise a contiguous run of exactly maxVisible pages is centered on
// currentPage and clamped to [1, totalPages]; the first and the last page are
// pinned around it, separated by an ellipsis when the run does not touch them:
//
//	ComputeWindow(10, 20, 5) // 1 … 8 9 10 11 12 … 20
//	ComputeWindow(1, 20, 5)  // 1 2 3 4 5 … 20
//	ComputeWindow(20, 20, 5) // 1 … 16 17 18 19 20
//
// Arguments outside their domain are clamped: totalPages to at least 1,
// currentPage into [1, totalPages], and a maxVisible below 1 falls back to
// DefaultMaxVisible.
func ComputeWindow(currentPage, totalPages, maxVisible int) Window {
	totalPages = max(totalPages, FirstPage)
	currentPage = lo.Clamp(currentPage, FirstPage, totalPages)
	maxVisible = NormalizeMaxVisible(maxVisible)

	if totalPages <= maxVisible {
		w := make(Window, 0, totalPages)
		for p := FirstPage; p <= totalPages; p++ {
			w = append(w, PageNumber(p))
		}

		return w
	}

	half := maxVisible / 2
	start := max(FirstPage, currentPage-half)
	end := min(totalPages, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(FirstPage, end-maxVisible+1)
	}

	// Window plus two anchors and two ellipses at most.
	w := make(Window, 0, maxVisible+4)

	if start > FirstPage {
		w = append(w, PageNumber(FirstPage))
		if start > FirstPage+1 {
			w = append(w, Ellipsis)
		}
	}

	for p := start; p <= end; p++ {
		w = append(w, PageNumber(p))
	}

	if end < totalPages {
		if end < totalPages-1 {
			w = append(w, Ellipsis)
		}
		w = append(w, PageNumber(totalPages))
	}

	return w
}
