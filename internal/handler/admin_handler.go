package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tripvista/internal/admin"
	apperrors "tripvista/internal/errors"
	"tripvista/internal/logger"
	"tripvista/internal/metrics"
	"tripvista/internal/model"
	"tripvista/internal/service"
	"tripvista/internal/upload"
)

// AdminHandler exposes the CRUD surface over the four content tables. Every
// route it serves sits behind the session middleware.
type AdminHandler struct {
	content service.ContentService
	uploads *upload.Store
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(content service.ContentService, uploads *upload.Store, m *metrics.Metrics, log logger.Logger) *AdminHandler {
	return &AdminHandler{content: content, uploads: uploads, metrics: m, log: log}
}

// PackageRequest carries package create/update fields.
type PackageRequest struct {
	Name           string `json:"name" form:"name" validate:"required"`
	Description    string `json:"description" form:"description"`
	Type           string `json:"type" form:"type" validate:"required"`
	Price          string `json:"price" form:"price"`
	ContactName    string `json:"contact_name" form:"contact_name"`
	ContactPhone   string `json:"contact_phone" form:"contact_phone"`
	DurationDays   int    `json:"duration_days" form:"duration_days" validate:"min=0"`
	DurationNights int    `json:"duration_nights" form:"duration_nights" validate:"min=0"`
}

// ServiceRequest carries service create/update fields.
type ServiceRequest struct {
	Name          string `json:"name" form:"name" validate:"required"`
	Description   string `json:"description" form:"description"`
	ContactPerson string `json:"contact_person" form:"contact_person"`
	Email         string `json:"email" form:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" form:"phone"`
}

// TestimonialRequest carries testimonial create/update fields. Rating is
// explicitly bounded to 1-5.
type TestimonialRequest struct {
	TestimonialText string `json:"testimonial_text" form:"testimonial_text" validate:"required"`
	Name            string `json:"name" form:"name" validate:"required"`
	Location        string `json:"location" form:"location" validate:"required"`
	Rating          int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
}

// TeamMemberRequest carries team member create/update fields.
type TeamMemberRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Position string `json:"position" form:"position" validate:"required"`
	IsHead   bool   `json:"is_head" form:"is_head"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" form:"phone"`
}

// Dashboard godoc
// @Summary Admin dashboard view registry
// @Tags admin
// @Produce json
// @Success 200 {array} admin.View
// @Router /admin [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, admin.Views)
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// respondError maps a domain error onto the HTTP response.
func (h *AdminHandler) respondError(entity string, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= http.StatusInternalServerError {
		h.log.Error("admin operation failed", "entity", entity, "error", err)
		h.metrics.ErrorsCount.WithLabelValues("admin_" + entity).Inc()
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// formImage stores an uploaded image when the request carries one. An absent
// file field is not an error; the returned name is empty then.
func (h *AdminHandler) formImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	name, err := h.uploads.Save(file)
	if err != nil {
		h.log.Error("storing upload failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("upload").Inc()
		return "", echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to store uploaded image",
			Code:  "UPLOAD_FAILED",
		})
	}
	h.metrics.UploadsStored.Inc()
	return name, nil
}

// Packages

// ListPackages godoc
// @Summary List packages
// @Tags admin
// @Produce json
// @Success 200 {array} model.Package
// @Router /admin/packages [get]
func (h *AdminHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.content.ListPackages(c.Request().Context())
	if err != nil {
		return h.respondError("packages", err)
	}
	return c.JSON(http.StatusOK, pkgs)
}

// GetPackage godoc
// @Summary Read one package
// @Tags admin
// @Produce json
// @Param id path int true "Package id"
// @Success 200 {object} model.Package
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/packages/{id} [get]
func (h *AdminHandler) GetPackage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	pkg, err := h.content.GetPackage(c.Request().Context(), id)
	if err != nil {
		return h.respondError("packages", err)
	}
	return c.JSON(http.StatusOK, pkg)
}

// CreatePackage godoc
// @Summary Create a package
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/packages [post]
func (h *AdminHandler) CreatePackage(c echo.Context) error {
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	pkg := &model.Package{
		Name:           req.Name,
		Description:    req.Description,
		Image:          image,
		Type:           req.Type,
		Price:          req.Price,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		DurationDays:   req.DurationDays,
		DurationNights: req.DurationNights,
	}
	if err := h.content.CreatePackage(c.Request().Context(), pkg); err != nil {
		return h.respondError("packages", err)
	}
	h.metrics.ContentWrites.WithLabelValues("packages", "create").Inc()
	return c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage godoc
// @Summary Update a package
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path int true "Package id"
// @Success 200 {object} model.Package
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/packages/{id} [put]
func (h *AdminHandler) UpdatePackage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	fields := &model.Package{
		Name:           req.Name,
		Description:    req.Description,
		Image:          image,
		Type:           req.Type,
		Price:          req.Price,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		DurationDays:   req.DurationDays,
		DurationNights: req.DurationNights,
	}
	pkg, err := h.content.UpdatePackage(c.Request().Context(), id, fields)
	if err != nil {
		return h.respondError("packages", err)
	}
	h.metrics.ContentWrites.WithLabelValues("packages", "update").Inc()
	return c.JSON(http.StatusOK, pkg)
}

// DeletePackage godoc
// @Summary Delete a package
// @Tags admin
// @Param id path int true "Package id"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/packages/{id} [delete]
func (h *AdminHandler) DeletePackage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.content.DeletePackage(c.Request().Context(), id); err != nil {
		return h.respondError("packages", err)
	}
	h.metrics.ContentWrites.WithLabelValues("packages", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Services

// ListServices godoc
// @Summary List services
// @Tags admin
// @Produce json
// @Success 200 {array} model.Service
// @Router /admin/services [get]
func (h *AdminHandler) ListServices(c echo.Context) error {
	svcs, err := h.content.ListServices(c.Request().Context())
	if err != nil {
		return h.respondError("services", err)
	}
	return c.JSON(http.StatusOK, svcs)
}

// GetService godoc
// @Summary Read one service
// @Tags admin
// @Produce json
// @Param id path int true "Service id"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/services/{id} [get]
func (h *AdminHandler) GetService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	svc, err := h.content.GetService(c.Request().Context(), id)
	if err != nil {
		return h.respondError("services", err)
	}
	return c.JSON(http.StatusOK, svc)
}

// CreateService godoc
// @Summary Create a service
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/services [post]
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	svc := &model.Service{
		Name:          req.Name,
		Description:   req.Description,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Image:         image,
	}
	if err := h.content.CreateService(c.Request().Context(), svc); err != nil {
		return h.respondError("services", err)
	}
	h.metrics.ContentWrites.WithLabelValues("services", "create").Inc()
	return c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary Update a service
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path int true "Service id"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/services/{id} [put]
func (h *AdminHandler) UpdateService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	fields := &model.Service{
		Name:          req.Name,
		Description:   req.Description,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Image:         image,
	}
	svc, err := h.content.UpdateService(c.Request().Context(), id, fields)
	if err != nil {
		return h.respondError("services", err)
	}
	h.metrics.ContentWrites.WithLabelValues("services", "update").Inc()
	return c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary Delete a service
// @Tags admin
// @Param id path int true "Service id"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.content.DeleteService(c.Request().Context(), id); err != nil {
		return h.respondError("services", err)
	}
	h.metrics.ContentWrites.WithLabelValues("services", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Testimonials

// ListTestimonials godoc
// @Summary List testimonials
// @Tags admin
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /admin/testimonials [get]
func (h *AdminHandler) ListTestimonials(c echo.Context) error {
	ts, err := h.content.ListTestimonials(c.Request().Context())
	if err != nil {
		return h.respondError("testimonials", err)
	}
	return c.JSON(http.StatusOK, ts)
}

// GetTestimonial godoc
// @Summary Read one testimonial
// @Tags admin
// @Produce json
// @Param id path int true "Testimonial id"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [get]
func (h *AdminHandler) GetTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	t, err := h.content.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return h.respondError("testimonials", err)
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials [post]
func (h *AdminHandler) CreateTestimonial(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}
	if image == "" {
		// The testimonial image is the one required upload in the schema.
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	t := &model.Testimonial{
		TestimonialText: req.TestimonialText,
		Name:            req.Name,
		Location:        req.Location,
		Rating:          req.Rating,
		Image:           image,
	}
	if err := h.content.CreateTestimonial(c.Request().Context(), t); err != nil {
		return h.respondError("testimonials", err)
	}
	h.metrics.ContentWrites.WithLabelValues("testimonials", "create").Inc()
	return c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path int true "Testimonial id"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [put]
func (h *AdminHandler) UpdateTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	fields := &model.Testimonial{
		TestimonialText: req.TestimonialText,
		Name:            req.Name,
		Location:        req.Location,
		Rating:          req.Rating,
		Image:           image,
	}
	t, err := h.content.UpdateTestimonial(c.Request().Context(), id, fields)
	if err != nil {
		return h.respondError("testimonials", err)
	}
	h.metrics.ContentWrites.WithLabelValues("testimonials", "update").Inc()
	return c.JSON(http.StatusOK, t)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags admin
// @Param id path int true "Testimonial id"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [delete]
func (h *AdminHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.content.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return h.respondError("testimonials", err)
	}
	h.metrics.ContentWrites.WithLabelValues("testimonials", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Team members

// ListTeamMembers godoc
// @Summary List team members
// @Tags admin
// @Produce json
// @Success 200 {array} model.TeamMember
// @Router /admin/team-members [get]
func (h *AdminHandler) ListTeamMembers(c echo.Context) error {
	ms, err := h.content.ListTeamMembers(c.Request().Context())
	if err != nil {
		return h.respondError("team-members", err)
	}
	return c.JSON(http.StatusOK, ms)
}

// GetTeamMember godoc
// @Summary Read one team member
// @Tags admin
// @Produce json
// @Param id path int true "Team member id"
// @Success 200 {object} model.TeamMember
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/team-members/{id} [get]
func (h *AdminHandler) GetTeamMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	m, err := h.content.GetTeamMember(c.Request().Context(), id)
	if err != nil {
		return h.respondError("team-members", err)
	}
	return c.JSON(http.StatusOK, m)
}

// CreateTeamMember godoc
// @Summary Create a team member
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.TeamMember
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/team-members [post]
func (h *AdminHandler) CreateTeamMember(c echo.Context) error {
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}
	if image == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	m := &model.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Image:    image,
		IsHead:   req.IsHead,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := h.content.CreateTeamMember(c.Request().Context(), m); err != nil {
		return h.respondError("team-members", err)
	}
	h.metrics.ContentWrites.WithLabelValues("team-members", "create").Inc()
	return c.JSON(http.StatusCreated, m)
}

// UpdateTeamMember godoc
// @Summary Update a team member
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path int true "Team member id"
// @Success 200 {object} model.TeamMember
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/team-members/{id} [put]
func (h *AdminHandler) UpdateTeamMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	image, err := h.formImage(c)
	if err != nil {
		return err
	}

	fields := &model.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Image:    image,
		IsHead:   req.IsHead,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	m, err := h.content.UpdateTeamMember(c.Request().Context(), id, fields)
	if err != nil {
		return h.respondError("team-members", err)
	}
	h.metrics.ContentWrites.WithLabelValues("team-members", "update").Inc()
	return c.JSON(http.StatusOK, m)
}

// DeleteTeamMember godoc
// @Summary Delete a team member
// @Tags admin
// @Param id path int true "Team member id"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/team-members/{id} [delete]
func (h *AdminHandler) DeleteTeamMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.content.DeleteTeamMember(c.Request().Context(), id); err != nil {
		return h.respondError("team-members", err)
	}
	h.metrics.ContentWrites.WithLabelValues("team-members", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
