package hotelpager

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// CountField names the envelope field a backend used to report the row count.
type CountField string

const (
	CountFieldNone          CountField = ""
	CountFieldTotalElements CountField = "totalElements"
	CountFieldTotalItems    CountField = "totalItems"
)

// Page is the list envelope exchanged with the hotel backend.
//
// Backends are not consistent about field names: the rows may arrive under
// "content" or "items" and the row count under "totalElements" or
// "totalItems". Decoding accepts both spellings without merging them
// silently: CountField reports which one a response actually carried.
// Encoding always writes "content" and "totalElements".
type Page[T any] struct {
	// Content - rows of the page.
	Content []T `json:"content"`
	// Number - 1-indexed number of the page.
	Number int `json:"number"`
	// Size - requested rows per page.
	Size int `json:"size"`
	// TotalPages - number of pages in the dataset, at least 1.
	TotalPages int `json:"totalPages"`
	// TotalElements - number of rows in the dataset.
	TotalElements int64 `json:"totalElements"`

	countField CountField
}

type rawPage[T any] struct {
	Content       []T    `json:"content"`
	Items         []T    `json:"items"`
	Number        int    `json:"number"`
	Size          int    `json:"size"`
	TotalPages    int    `json:"totalPages"`
	TotalElements *int64 `json:"totalElements"`
	TotalItems    *int64 `json:"totalItems"`
}

// UnmarshalJSON - implements json.Unmarshaler.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw rawPage[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal page envelope: %w", err)
	}

	if raw.Content != nil && raw.Items != nil {
		return fmt.Errorf("page envelope carries both 'content' and 'items'")
	}
	if raw.TotalElements != nil && raw.TotalItems != nil && *raw.TotalElements != *raw.TotalItems {
		return fmt.Errorf("page envelope carries conflicting 'totalElements' and 'totalItems'")
	}

	*p = Page[T]{
		Content:    lo.Ternary(raw.Content != nil, raw.Content, raw.Items),
		Number:     raw.Number,
		Size:       raw.Size,
		TotalPages: raw.TotalPages,
	}
	if p.Content == nil {
		p.Content = []T{}
	}

	switch {
	case raw.TotalElements != nil:
		p.TotalElements = *raw.TotalElements
		p.countField = CountFieldTotalElements
	case raw.TotalItems != nil:
		p.TotalElements = *raw.TotalItems
		p.countField = CountFieldTotalItems
	default:
		p.countField = CountFieldNone
	}

	return nil
}

// CountField reports which field carried the row count when the page was
// decoded from JSON. Pages built by FetchPage report CountFieldTotalElements.
func (p *Page[T]) CountField() CountField {
	if p == nil {
		return CountFieldNone
	}

	return p.countField
}

// IsEmpty reports whether the page holds no rows.
func (p *Page[T]) IsEmpty() bool {
	return p == nil || len(p.Content) == 0
}

// State converts the envelope into the PaginationState of a list view.
// Missing totals are derived: TotalPages from the row count when the backend
// omitted it, and the page number defaults to FirstPage.
func (p *Page[T]) State() *PaginationState {
	if p == nil {
		return NewPaginationState(DefaultPageSize)
	}

	state := NewPaginationState(p.Size)
	state.CurrentPage = NormalizePage(p.Number)

	totalPages := p.TotalPages
	if totalPages < FirstPage {
		totalPages = TotalPagesFor(p.TotalElements, state.ItemsPerPage)
	}

	return state.Refresh(totalPages, p.TotalElements)
}
