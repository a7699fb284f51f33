package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripvista/internal/logger"
	"tripvista/internal/metrics"
	"tripvista/internal/model"
	"tripvista/internal/service"
)

// Notices shown when a public query degrades. The request still succeeds
// with an empty payload, mirroring the flash-and-render-anyway behavior of
// the site.
const (
	noticeHome     = "Error fetching data. Please try again later."
	noticePackages = "Error fetching packages. Please try again later."
	noticeServices = "Error fetching services. Please try again later."
	noticeTeam     = "Error fetching team members. Please try again later."
)

// PublicHandler serves the unauthenticated pages as JSON payloads.
type PublicHandler struct {
	catalog service.CatalogService
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(catalog service.CatalogService, m *metrics.Metrics, log logger.Logger) *PublicHandler {
	return &PublicHandler{catalog: catalog, metrics: m, log: log}
}

// HomeResponse is the landing page payload.
type HomeResponse struct {
	Packages     []model.Package     `json:"packages"`
	Services     []model.Service     `json:"services"`
	Testimonials []model.Testimonial `json:"testimonials"`
	Notice       string              `json:"notice,omitempty"`
}

// PackagesResponse is the packages page payload, partitioned by type.
type PackagesResponse struct {
	National      []model.Package     `json:"national_packages"`
	International []model.Package     `json:"international_packages"`
	Testimonials  []model.Testimonial `json:"testimonials"`
	Notice        string              `json:"notice,omitempty"`
}

// ServicesResponse is the services page payload.
type ServicesResponse struct {
	Services     []model.Service     `json:"services"`
	Testimonials []model.Testimonial `json:"testimonials"`
	Notice       string              `json:"notice,omitempty"`
}

// AboutResponse is the about page payload, partitioned by leadership.
type AboutResponse struct {
	Heads        []model.TeamMember  `json:"heads"`
	Members      []model.TeamMember  `json:"members"`
	Testimonials []model.Testimonial `json:"testimonials"`
	Notice       string              `json:"notice,omitempty"`
}

// ContactResponse is the static contact page payload.
type ContactResponse struct {
	Page         string              `json:"page"`
	Testimonials []model.Testimonial `json:"testimonials"`
}

// testimonials is injected into every public payload. A failing query is
// logged and yields an empty slice, never a failed page.
func (h *PublicHandler) testimonials(c echo.Context) []model.Testimonial {
	ts, err := h.catalog.Testimonials(c.Request().Context())
	if err != nil {
		h.log.Error("fetching testimonials failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("testimonials").Inc()
		return []model.Testimonial{}
	}
	if ts == nil {
		ts = []model.Testimonial{}
	}
	return ts
}

// Home godoc
// @Summary Landing page data
// @Tags public
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func (h *PublicHandler) Home(c echo.Context) error {
	resp := HomeResponse{
		Packages:     []model.Package{},
		Services:     []model.Service{},
		Testimonials: h.testimonials(c),
	}

	data, err := h.catalog.Home(c.Request().Context())
	if err != nil {
		h.log.Error("fetching home data failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("home").Inc()
		resp.Notice = noticeHome
		return c.JSON(http.StatusOK, resp)
	}
	resp.Packages = data.Packages
	resp.Services = data.Services
	return c.JSON(http.StatusOK, resp)
}

// Packages godoc
// @Summary Packages partitioned into national and international
// @Tags public
// @Produce json
// @Success 200 {object} PackagesResponse
// @Router /packages [get]
func (h *PublicHandler) Packages(c echo.Context) error {
	resp := PackagesResponse{
		National:      []model.Package{},
		International: []model.Package{},
		Testimonials:  h.testimonials(c),
	}

	data, err := h.catalog.PackagesByType(c.Request().Context())
	if err != nil {
		h.log.Error("fetching packages failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("packages").Inc()
		resp.Notice = noticePackages
		return c.JSON(http.StatusOK, resp)
	}
	resp.National = data.National
	resp.International = data.International
	return c.JSON(http.StatusOK, resp)
}

// Services godoc
// @Summary Services list
// @Tags public
// @Produce json
// @Success 200 {object} ServicesResponse
// @Router /services [get]
func (h *PublicHandler) Services(c echo.Context) error {
	resp := ServicesResponse{
		Services:     []model.Service{},
		Testimonials: h.testimonials(c),
	}

	services, err := h.catalog.Services(c.Request().Context())
	if err != nil {
		h.log.Error("fetching services failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("services").Inc()
		resp.Notice = noticeServices
		return c.JSON(http.StatusOK, resp)
	}
	if services != nil {
		resp.Services = services
	}
	return c.JSON(http.StatusOK, resp)
}

// About godoc
// @Summary Team members partitioned into heads and members
// @Tags public
// @Produce json
// @Success 200 {object} AboutResponse
// @Router /about [get]
func (h *PublicHandler) About(c echo.Context) error {
	resp := AboutResponse{
		Heads:        []model.TeamMember{},
		Members:      []model.TeamMember{},
		Testimonials: h.testimonials(c),
	}

	data, err := h.catalog.Team(c.Request().Context())
	if err != nil {
		h.log.Error("fetching team members failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("about").Inc()
		resp.Notice = noticeTeam
		return c.JSON(http.StatusOK, resp)
	}
	resp.Heads = data.Heads
	resp.Members = data.Members
	return c.JSON(http.StatusOK, resp)
}

// Contact godoc
// @Summary Static contact page data
// @Tags public
// @Produce json
// @Success 200 {object} ContactResponse
// @Router /contact [get]
func (h *PublicHandler) Contact(c echo.Context) error {
	return c.JSON(http.StatusOK, ContactResponse{
		Page:         "contact",
		Testimonials: h.testimonials(c),
	})
}
