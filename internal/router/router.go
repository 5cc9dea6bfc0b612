package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clubsite/internal/config"
	"clubsite/internal/handler"
	"clubsite/internal/middleware"
	"clubsite/internal/service"
)

// Register wires routes and middleware. Reads on the four content resources
// are public; every write goes through token verification, user loading, and
// the admin gate.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	playerHandler *handler.PlayerHandler,
	matchHandler *handler.MatchHandler,
	newsHandler *handler.NewsHandler,
	galleryHandler *handler.GalleryHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/players", playerHandler.List)
	api.GET("/players/:id", playerHandler.Get)
	api.GET("/matches", matchHandler.List)
	api.GET("/matches/upcoming", matchHandler.ListUpcoming)
	api.GET("/matches/:id", matchHandler.Get)
	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/gallery/:id", galleryHandler.Get)

	// Secured routes: bearer token verified, then resolved to a user record
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:   []byte(cfg.JWTSecret),
			TokenLookup:  "header:" + echo.HeaderAuthorization + ":Bearer ",
			ErrorHandler: middleware.TokenErrorHandler,
		}),
		middleware.LoadUser(userService),
	)

	secured.GET("/auth/me", authHandler.Me)

	// Admin routes: all mutations on the content resources
	admin := secured.Group("", middleware.AdminOnly())

	admin.POST("/players", playerHandler.Create)
	admin.PUT("/players/:id", playerHandler.Update)
	admin.DELETE("/players/:id", playerHandler.Delete)

	admin.POST("/matches", matchHandler.Create)
	admin.PUT("/matches/:id", matchHandler.Update)
	admin.DELETE("/matches/:id", matchHandler.Delete)

	admin.POST("/news", newsHandler.Create)
	admin.PUT("/news/:id", newsHandler.Update)
	admin.DELETE("/news/:id", newsHandler.Delete)

	admin.POST("/gallery", galleryHandler.Create)
	admin.PUT("/gallery/:id", galleryHandler.Update)
	admin.DELETE("/gallery/:id", galleryHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
