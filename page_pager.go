package hotelpager

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// RawPagePager is intended for API payloads and query strings. For proper code
// generation, inline it:
//
//	type RoomFilter struct {
//	    Paging RawPagePager `json:",inline"`
//	}
type RawPagePager struct {
	// Page - 1-indexed number of the requested page. Values below 1 select the
	// first page.
	Page int `json:"page"`
	// Size - number of rows per page, normalized with NormalizePageSize.
	Size int `json:"size"`
	// Sort - optional list of "alias asc|desc" strings resolved through a
	// ColumnMapping.
	Sort []string `json:"sort,omitempty"`
}

// Decode converts RawPagePager into *PagePager. Sort strings are resolved via
// mapping and applied first; defaultOrderBy is appended afterwards so the
// ordering stays deterministic (pass the primary key last).
func (p RawPagePager) Decode(mapping ColumnMapping, defaultOrderBy ...OrderBy) (*PagePager, error) {
	requested, err := ParseSort(p.Sort, mapping)
	if err != nil {
		return nil, fmt.Errorf("cannot decode page pager: %w", err)
	}

	pager := DecodePagePager(p.Page, p.Size, requested...)
	for _, o := range defaultOrderBy {
		if !slices.ContainsFunc(pager.sort, func(processed OrderBy) bool { return processed.Column == o.Column }) {
			pager.sort = append(pager.sort, o)
		}
	}

	return pager, nil
}

// PagePager applies page-number pagination (LIMIT/OFFSET) to gorm queries.
type PagePager struct {
	page int
	size int
	sort Orderings
}

func NewPagePager() *PagePager {
	return &PagePager{
		page: FirstPage,
		size: DefaultPageSize,
	}
}

// DecodePagePager builds a *PagePager from raw page and size values.
func DecodePagePager(page, size int, orderBy ...OrderBy) *PagePager {
	return NewPagePager().
		WithPage(page).
		WithPageSize(size).
		WithSubstitutedSort(orderBy...)
}

// WithPage sets the requested page. Values below FirstPage select FirstPage.
func (c *PagePager) WithPage(page int) *PagePager {
	if c == nil {
		c = NewPagePager()
	}

	c.page = NormalizePage(page)

	return c
}

// WithPageSize sets the number of rows per page, normalized with
// NormalizePageSize.
func (c *PagePager) WithPageSize(size int) *PagePager {
	if c == nil {
		c = NewPagePager()
	}

	c.size = NormalizePageSize(size)

	return c
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (c *PagePager) WithSubstitutedSort(orderBy ...OrderBy) *PagePager {
	if c == nil {
		c = NewPagePager()
	}

	c.sort = nil

	return c.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones.
// Order is preserved as if calling:
//
//	OrderBy(o1).ThenBy(o2).ThenBy(o3)...
func (c *PagePager) WithSort(orderBy ...OrderBy) *PagePager {
	if c == nil {
		c = NewPagePager()
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(c.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// A later ordering on the same column wins.
		if idx != -1 {
			c.sort = slices.Delete(c.sort, idx, idx+1)
		}

		c.sort = append(c.sort, o)
	}

	return c
}

// Paginate applies ordering, LIMIT and OFFSET to the dataset. Returns an error
// if pagination cannot be applied.
func (c *PagePager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if c == nil {
		c = NewPagePager()
	}

	err := c.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = c.sort.Apply(db).Limit(c.size)
	if offset := c.GetOffset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db, nil
}

// GetPage returns the requested 1-indexed page.
func (c *PagePager) GetPage() int {
	if c == nil {
		return FirstPage
	}

	return c.page
}

// GetPageSize returns the number of rows per page.
func (c *PagePager) GetPageSize() int {
	if c == nil {
		return DefaultPageSize
	}

	return c.size
}

// GetOffset returns the number of rows skipped before the requested page.
func (c *PagePager) GetOffset() int {
	return (c.GetPage() - 1) * c.GetPageSize()
}

// GetSort returns orderings that will be applied to the dataset.
func (c *PagePager) GetSort() Orderings {
	if c == nil {
		return nil
	}

	return c.sort
}

func (c *PagePager) validate() error {
	if c == nil {
		return fmt.Errorf("page pager is nil")
	}

	if c.page < FirstPage {
		return fmt.Errorf("invalid page %d", c.page)
	}

	if _, ok := IsNormalizedPageSizeMax(c.size, MaxPageSize); !ok {
		return fmt.Errorf("invalid page size %d", c.size)
	}

	// Offset pagination over an unordered set may repeat or skip rows.
	return c.sort.validate()
}

// FetchPage counts the rows matched by db, then loads the requested page of
// them into a Page envelope. A page past the end of the dataset comes back
// with an empty Content and the real totals.
//
// db must carry the model or table and any filters, but no ordering, limit or
// offset:
//
//	page, err := hotelpager.FetchPage[Room](ctx, db.Model(&Room{}).Where("floor = ?", 3), pager)
func FetchPage[T any](ctx context.Context, db *gorm.DB, pager *PagePager) (*Page[T], error) {
	err := pager.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	var total int64
	if err = db.WithContext(ctx).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("cannot count dataset: %w", err)
	}

	content := make([]T, 0, pager.size)
	if int64(pager.GetOffset()) < total {
		paged, err := pager.Paginate(db.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		if err = paged.Find(&content).Error; err != nil {
			return nil, fmt.Errorf("cannot load page %d: %w", pager.page, err)
		}
	}

	return &Page[T]{
		Content:       content,
		Number:        pager.page,
		Size:          pager.size,
		TotalPages:    TotalPagesFor(total, pager.size),
		TotalElements: total,
		countField:    CountFieldTotalElements,
	}, nil
}
