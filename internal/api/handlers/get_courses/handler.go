package get_courses

import (
	"net/http"

	"github.com/kodbuds/leads-service/internal/api/handlers"
)

type Handler struct {
	service CoursesService
	logger  Logger
}

func NewHandler(service CoursesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.List(r.Context())
	options := h.service.EnrollmentOptions(r.Context())

	h.logger.Info("GET /courses - Catalog returned: courses_count=%d", len(catalog))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCourses(catalog, options))
}
