package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ServerConfig opciones de la app Fiber y de la cadena de seguridad.
type ServerConfig struct {
	AppName        string
	BodyLimitKB    int
	AllowedOrigins []string
	RateLimitMax   int
	RateLimitTTL   time.Duration
	// LimiterStorage nil usa memoria local.
	LimiterStorage fiber.Storage
}

// NewApp crea la app Fiber con el manejador central de errores y los middlewares comunes.
func NewApp(cfg ServerConfig, res *Responder) *fiber.App {
	bodyLimit := cfg.BodyLimitKB * 1024
	if bodyLimit <= 0 {
		bodyLimit = 25 * 1024
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		BodyLimit:    bodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: res.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(MetricsMiddleware())
	app.Use(helmet.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitTTL,
			Storage:    cfg.LimiterStorage,
			LimitReached: func(c *fiber.Ctx) error {
				return NewError(fiber.StatusTooManyRequests, msgTooManyRequest)
			},
		}))
	}
	return app
}

// corsConfig permite credenciales (cookie de refresh) salvo con origen comodín,
// combinación que Fiber rechaza.
func corsConfig(origins []string) cors.Config {
	allow := strings.Join(origins, ",")
	if allow == "" {
		allow = "*"
	}
	return cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    fiber.HeaderAuthorization,
		AllowCredentials: !strings.Contains(allow, "*"),
	}
}
