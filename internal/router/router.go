package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "tripvista/internal/errors"
	"tripvista/internal/handler"
	"tripvista/internal/logger"
	"tripvista/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.StoreInterface,
	publicHandler *handler.PublicHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	uploadDir string,
	log logger.Logger,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Resolve(sessions))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.HTTPErrorHandler = errorHandler(log)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served the way templates reference them.
	e.Static("/static/images", uploadDir)

	// Public read surface
	e.GET("/", publicHandler.Home)
	e.GET("/packages", publicHandler.Packages)
	e.GET("/services", publicHandler.Services)
	e.GET("/about", publicHandler.About)
	e.GET("/contact", publicHandler.Contact)

	// Auth gate
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, session.RequireAuth())

	// Admin CRUD surface; every route requires a live session.
	adm := e.Group("/admin", session.RequireAuth())
	adm.GET("", adminHandler.Dashboard)

	adm.GET("/packages", adminHandler.ListPackages)
	adm.POST("/packages", adminHandler.CreatePackage)
	adm.GET("/packages/:id", adminHandler.GetPackage)
	adm.PUT("/packages/:id", adminHandler.UpdatePackage)
	adm.DELETE("/packages/:id", adminHandler.DeletePackage)

	adm.GET("/services", adminHandler.ListServices)
	adm.POST("/services", adminHandler.CreateService)
	adm.GET("/services/:id", adminHandler.GetService)
	adm.PUT("/services/:id", adminHandler.UpdateService)
	adm.DELETE("/services/:id", adminHandler.DeleteService)

	adm.GET("/testimonials", adminHandler.ListTestimonials)
	adm.POST("/testimonials", adminHandler.CreateTestimonial)
	adm.GET("/testimonials/:id", adminHandler.GetTestimonial)
	adm.PUT("/testimonials/:id", adminHandler.UpdateTestimonial)
	adm.DELETE("/testimonials/:id", adminHandler.DeleteTestimonial)

	adm.GET("/team-members", adminHandler.ListTeamMembers)
	adm.POST("/team-members", adminHandler.CreateTeamMember)
	adm.GET("/team-members/:id", adminHandler.GetTeamMember)
	adm.PUT("/team-members/:id", adminHandler.UpdateTeamMember)
	adm.DELETE("/team-members/:id", adminHandler.DeleteTeamMember)
}

// errorHandler renders every uncaught error as a generic JSON body. Unknown
// routes get a plain 404 and everything else collapses to a 500 with no
// internal detail.
func errorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var body interface{} = apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			switch m := he.Message.(type) {
			case apperrors.ErrorResponse:
				body = m
			case string:
				body = apperrors.ErrorResponse{Error: m, Code: http.StatusText(code)}
			default:
				body = apperrors.ErrorResponse{Error: http.StatusText(code), Code: http.StatusText(code)}
			}
			if code == http.StatusNotFound {
				body = apperrors.ErrorResponse{Error: "page not found", Code: "NOT_FOUND"}
			}
		} else {
			log.Error("unhandled request error", "error", err, "path", c.Path())
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
