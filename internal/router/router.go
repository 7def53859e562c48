package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	users auth.UserFinder,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	applicationHandler *handler.ApplicationHandler,
	candidateHandler *handler.CandidateHandler,
	employerHandler *handler.EmployerHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)
	api.GET("/employers", employerHandler.List)
	api.GET("/employers/:id", employerHandler.Get)
	api.POST("/candidates", candidateHandler.Upsert)
	// Application submission is public: candidates do not hold accounts.
	api.POST("/applications", applicationHandler.Apply)

	// Secured routes: token signature/expiry checked first, then the subject
	// is resolved against the identity store.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization,
		}),
		auth.ResolveActor(jwtService, users),
	)

	// Job mutation (ownership checked in the service layer)
	secured.POST("/jobs", jobHandler.Create)
	secured.PATCH("/jobs/:id", jobHandler.Update)
	secured.DELETE("/jobs/:id", jobHandler.Delete)

	// Application workflow
	secured.GET("/applications/job/:jobId", applicationHandler.ListForJob)
	secured.PATCH("/applications/:id/status", applicationHandler.SetStatus)

	// Candidate detail and listing (employer or admin)
	secured.GET("/candidates", candidateHandler.List)
	secured.GET("/candidates/:id", candidateHandler.Get)

	// Employer mutation (admin only, checked in the service layer)
	secured.POST("/employers", employerHandler.Create)
	secured.PATCH("/employers/:id", employerHandler.Update)
	secured.DELETE("/employers/:id", employerHandler.Delete)

	// Notifications
	secured.GET("/notifications", notificationHandler.List)
	secured.POST("/notifications", notificationHandler.Create)
	secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	// Admin dashboard
	secured.GET("/admin/counts", adminHandler.Counts)
	secured.GET("/admin/applications/status", adminHandler.StatusBreakdown)
	secured.GET("/admin/applications/per-job", adminHandler.TopJobs)
	secured.GET("/admin/applications/monthly", adminHandler.MonthlyVolume)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
