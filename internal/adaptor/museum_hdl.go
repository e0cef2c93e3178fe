package adaptor

import (
	"net/http"

	"museumpass/internal/dto/request"
	"museumpass/internal/usecase"
	"museumpass/pkg/middleware"
	"museumpass/pkg/utils"

	"go.uber.org/zap"
)

type MuseumHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMuseumHandler(service usecase.CatalogService, log *zap.Logger) *MuseumHandler {
	return &MuseumHandler{
		service: service,
		log:     log.With(zap.String("handler", "museum")),
	}
}

// ListMuseums handles GET /museums
func (h *MuseumHandler) ListMuseums(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListMuseumsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Location: query.Get("location"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	museums, err := h.service.ListMuseums(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list museums")
		return
	}

	utils.ResponseSuccess(w, "success", museums)
}

// Availability handles GET /museums/availability
func (h *MuseumHandler) Availability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AvailabilityRequest{
		Museum: query.Get("museum"),
		Date:   query.Get("date"),
	}

	middleware.Annotate(r.Context(), zap.String("museum", req.Museum), zap.String("date", req.Date))

	availability, err := h.service.Availability(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

func (h *MuseumHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
