package hotelpager

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Control is a single button of a rendered pagination bar.
type Control struct {
	Token PageToken `json:"token"`
	// Current marks the button of the displayed page.
	Current bool `json:"current"`
	// Disabled is set for the current page and for ellipses. Selecting a
	// disabled control must not trigger a page change.
	Disabled bool `json:"disabled"`
}

// Controls describes everything a view needs to draw its pagination bar.
type Controls struct {
	Items   []Control `json:"items"`
	HasPrev bool      `json:"hasPrev"`
	HasNext bool      `json:"hasNext"`
	From    int64     `json:"from"`
	To      int64     `json:"to"`
	Total   int64     `json:"total"`
}

// Controls derives the pagination bar for the current state.
func (s *PaginationState) Controls(maxVisible int) Controls {
	current := FirstPage
	if s != nil {
		current = s.CurrentPage
	}

	from, to := s.Range()
	ret := Controls{
		Items: lo.Map(s.Window(maxVisible), func(t PageToken, _ int) Control {
			isCurrent := t.Page() == current

			return Control{
				Token:    t,
				Current:  isCurrent,
				Disabled: isCurrent || t.IsEllipsis(),
			}
		}),
		HasPrev: s.HasPrev(),
		HasNext: s.HasNext(),
		From:    from,
		To:      to,
	}
	if s != nil {
		ret.Total = s.TotalElements
	}

	return ret
}

// Summary returns the "Showing X–Y of Z" line.
func (c Controls) Summary() string {
	return fmt.Sprintf("Showing %d–%d of %d", c.From, c.To, c.Total)
}

// String renders the bar on one line, the current page in brackets and
// unavailable arrows omitted:
//
//	‹ 1 … 8 9 [10] 11 12 … 20 ›
func (c Controls) String() string {
	parts := make([]string, 0, len(c.Items)+2)
	if c.HasPrev {
		parts = append(parts, "‹")
	}

	for _, item := range c.Items {
		parts = append(parts, lo.Ternary(item.Current, "["+item.Token.String()+"]", item.Token.String()))
	}

	if c.HasNext {
		parts = append(parts, "›")
	}

	return strings.Join(parts, " ")
}
