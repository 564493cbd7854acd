package main

import (
	"sharednotes/internal/config"
	"sharednotes/internal/contract"
	"sharednotes/internal/domain/sqlite"
	"sharednotes/internal/domain/sqlite/repository"
	"sharednotes/internal/http/handler"
	appmiddleware "sharednotes/internal/http/middleware"
	"sharednotes/internal/service"
	"sharednotes/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		panic(err)
	}
	cfg := config.Load()

	validate := validator.New()
	registerValidators(validate)

	db, err := sqlite.Init(cfg.DBPath, cfg.DBPrefix)
	if err != nil {
		panic(err)
	}

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret)
	noteService := service.NewNoteService(noteRepo, userRepo, validate)
	searchService := service.NewSearchService(noteRepo)

	authRoutes := handler.NewAuthDefault(authService)
	noteRoutes := handler.NewNoteDefault(noteService)
	searchRoutes := handler.NewSearchDefault(searchService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(newRateLimiter(cfg))

	authCheck := appmiddleware.NewAuthMiddleware(&appmiddleware.AuthMiddlewareConfig{
		UserRepo: userRepo,
		Secret:   cfg.JWTSecret,
	})

	// Auth
	e.POST("/api/v1/auth/signup", authRoutes.Signup)
	e.POST("/api/v1/auth/signin", authRoutes.Signin)

	// Notes
	e.POST("/api/v1/notes", noteRoutes.CreateNote, authCheck)
	e.GET("/api/v1/notes", noteRoutes.GetNotes, authCheck)
	e.PUT("/api/v1/notes", noteRoutes.UpdateNote, authCheck)
	e.DELETE("/api/v1/notes", noteRoutes.DeleteNote, authCheck)
	e.GET("/api/v1/notes/:noteId", noteRoutes.GetNote, authCheck)
	e.POST("/api/v1/notes/:noteId/share", noteRoutes.ShareNote, authCheck)

	// Search
	e.GET("/api/v1/search", searchRoutes.Search, authCheck)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	validate.RegisterStructValidation(validators.SignupNameCheck, contract.SignupRequest{})
}

// newRateLimiter admits at most cfg.RateLimit requests per IP over
// cfg.RateWindow, uniformly across all routes.
func newRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.RateLimit) / cfg.RateWindow.Seconds()),
			Burst:     cfg.RateLimit,
			ExpiresIn: cfg.RateWindow,
		}),
	})
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
