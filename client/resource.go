package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Alp4ka/hotelpager"
	"github.com/Alp4ka/hotelpager/model"
)

// ListParams selects a page of a collection.
type ListParams = hotelpager.RawPagePager

// Resource is one entity collection of the backend.
type Resource[T any] struct {
	c    *Client
	name string
}

// Collection binds a collection by name. Entities implementing
// model.Identifiable are validated before they are sent; other row types,
// e.g. map[string]any for generic listing, are sent as is.
func Collection[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// List fetches one page. Page and size are sent only when set, so the
// backend defaults apply otherwise.
func (r *Resource[T]) List(ctx context.Context, params ListParams) (*hotelpager.Page[T], error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}
	for _, s := range params.Sort {
		query.Add("sort", s)
	}

	page := new(hotelpager.Page[T])
	if err := r.c.do(ctx, http.MethodGet, []string{r.name}, query, nil, page); err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", r.name, err)
	}

	return page, nil
}

func (r *Resource[T]) Get(ctx context.Context, id uint) (*T, error) {
	entity := new(T)
	if err := r.c.do(ctx, http.MethodGet, []string{r.name, idSegment(id)}, nil, nil, entity); err != nil {
		return nil, fmt.Errorf("cannot get %s %d: %w", r.name, id, err)
	}

	return entity, nil
}

// Create POSTs entity and returns the stored version.
func (r *Resource[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := validate(entity); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", r.name, err)
	}

	created := new(T)
	if err := r.c.do(ctx, http.MethodPost, []string{r.name}, nil, entity, created); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", r.name, err)
	}

	return created, nil
}

// Update PUTs entity under id and returns the stored version.
func (r *Resource[T]) Update(ctx context.Context, id uint, entity *T) (*T, error) {
	if err := validate(entity); err != nil {
		return nil, fmt.Errorf("cannot update %s %d: %w", r.name, id, err)
	}

	updated := new(T)
	if err := r.c.do(ctx, http.MethodPut, []string{r.name, idSegment(id)}, nil, entity, updated); err != nil {
		return nil, fmt.Errorf("cannot update %s %d: %w", r.name, id, err)
	}

	return updated, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	if err := r.c.do(ctx, http.MethodDelete, []string{r.name, idSegment(id)}, nil, nil, nil); err != nil {
		return fmt.Errorf("cannot delete %s %d: %w", r.name, id, err)
	}

	return nil
}

func validate[T any](entity *T) error {
	if entity == nil {
		return fmt.Errorf("nil entity")
	}
	if _, ok := any(entity).(model.Identifiable); !ok {
		return nil
	}

	return model.Validate(entity)
}
