package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/Alp4ka/hotelpager"
	"github.com/Alp4ka/hotelpager/model"
)

// entity is a model type whose pointer carries the primary key accessors.
type entity[T any] interface {
	*T
	model.Identifiable
}

// resourceHandler serves list/get/create/update/delete for one collection.
type resourceHandler[T any, PT entity[T]] struct {
	db       *gorm.DB
	resource model.Resource
	writer   *Writer
}

func mountResource[T any, PT entity[T]](router chi.Router, db *gorm.DB, resource model.Resource, writer *Writer) {
	h := &resourceHandler[T, PT]{db: db, resource: resource, writer: writer}

	router.Route("/"+resource.Name, func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

// list handles 'GET /{resource}?page={number?:1}&size={number?:10}&sort={string...}'
func (h *resourceHandler[T, PT]) list(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*Error

	page, validationErr := QueryNumber(request, "page", hotelpager.FirstPage, hotelpager.FirstPage, math.MaxInt32)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	size, validationErr := QueryNumber(request, "size", hotelpager.DefaultPageSize, 1, hotelpager.MaxPageSize)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		h.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	raw := hotelpager.RawPagePager{
		Page: int(page),
		Size: int(size),
		Sort: request.URL.Query()["sort"],
	}
	pager, err := raw.Decode(h.resource.Sort, h.resource.DefaultOrder())
	if err != nil {
		h.writer.WriteErrors(writer, http.StatusBadRequest, errSortInvalid(err))
		return
	}

	result, err := hotelpager.FetchPage[T](request.Context(), h.db.Model(PT(new(T))), pager)
	if err != nil {
		h.writer.WriteInternalError(writer, err)
		return
	}

	h.writer.WriteJSON(writer, result)
}

// get handles 'GET /{resource}/{id}'
func (h *resourceHandler[T, PT]) get(writer http.ResponseWriter, request *http.Request) {
	id, ok := h.pathID(writer, request)
	if !ok {
		return
	}

	found := PT(new(T))
	if err := h.db.WithContext(request.Context()).First(found, id).Error; err != nil {
		h.writeStorageError(writer, err)
		return
	}

	h.writer.WriteJSON(writer, found)
}

// create handles 'POST /{resource}'
func (h *resourceHandler[T, PT]) create(writer http.ResponseWriter, request *http.Request) {
	payload, ok := h.decodeBody(writer, request)
	if !ok {
		return
	}

	payload.SetID(0)
	if err := h.db.WithContext(request.Context()).Create(payload).Error; err != nil {
		h.writer.WriteInternalError(writer, err)
		return
	}

	h.writer.WriteJSONCode(writer, http.StatusCreated, payload)
}

// update handles 'PUT /{resource}/{id}', replacing every column
func (h *resourceHandler[T, PT]) update(writer http.ResponseWriter, request *http.Request) {
	id, ok := h.pathID(writer, request)
	if !ok {
		return
	}

	payload, ok := h.decodeBody(writer, request)
	if !ok {
		return
	}

	payload.SetID(id)
	res := h.db.WithContext(request.Context()).Model(payload).Select("*").Omit("id").Updates(payload)
	if res.Error != nil {
		h.writer.WriteInternalError(writer, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		h.writer.WriteErrors(writer, http.StatusNotFound, ErrNotFound)
		return
	}

	h.writer.WriteJSON(writer, payload)
}

// delete handles 'DELETE /{resource}/{id}'
func (h *resourceHandler[T, PT]) delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := h.pathID(writer, request)
	if !ok {
		return
	}

	res := h.db.WithContext(request.Context()).Delete(PT(new(T)), id)
	if res.Error != nil {
		h.writer.WriteInternalError(writer, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		h.writer.WriteErrors(writer, http.StatusNotFound, ErrNotFound)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

func (h *resourceHandler[T, PT]) pathID(writer http.ResponseWriter, request *http.Request) (uint, bool) {
	raw := chi.URLParam(request, "id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.writer.WriteErrors(writer, http.StatusBadRequest, errPathParameterInvalid("id", raw))
		return 0, false
	}

	return uint(id), true
}

// decodeBody reads and validates the entity sent by the client
func (h *resourceHandler[T, PT]) decodeBody(writer http.ResponseWriter, request *http.Request) (PT, bool) {
	payload := PT(new(T))
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		h.writer.WriteErrors(writer, http.StatusBadRequest, errRequestBodyInvalidJSON(err))
		return nil, false
	}

	err := model.Validate(payload)
	if err == nil {
		return payload, true
	}

	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		h.writer.WriteErrors(writer, http.StatusBadRequest, lo.Map(vErr.Fields, func(f model.FieldError, _ int) *Error {
			return errFieldInvalid(f)
		})...)
		return nil, false
	}

	h.writer.WriteInternalError(writer, err)
	return nil, false
}

func (h *resourceHandler[T, PT]) writeStorageError(writer http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.writer.WriteErrors(writer, http.StatusNotFound, ErrNotFound)
		return
	}

	h.writer.WriteInternalError(writer, err)
}
