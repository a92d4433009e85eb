package server

import (
	"math"
	"net/http"

	"github.com/Alp4ka/hotelpager"
)

type windowResponse struct {
	Window   hotelpager.Window `json:"window"`
	Rendered string            `json:"rendered"`
}

// endpointWindow handles 'GET /window?current={number?:1}&total={number?:1}&max={number?:5}'
// for views that do not compute the page selector themselves
func (service *Service) endpointWindow(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*Error

	current, validationErr := QueryNumber(request, "current", hotelpager.FirstPage, hotelpager.FirstPage, math.MaxInt32)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	total, validationErr := QueryNumber(request, "total", hotelpager.FirstPage, hotelpager.FirstPage, math.MaxInt32)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	maxVisible, validationErr := QueryNumber(request, "max", hotelpager.DefaultMaxVisible, 1, hotelpager.MaxPageSize)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	window := hotelpager.ComputeWindow(int(current), int(total), int(maxVisible))
	service.writer.WriteJSON(writer, windowResponse{Window: window, Rendered: window.String()})
}
