// @title                       LMS API
// @version                     1.0
// @description                 API multi-tenant de un LMS: administradores, empresas, empleados e individuales.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/lms-api/docs"
	"github.com/jhoicas/lms-api/internal/application/auth"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/infrastructure/mail"
	"github.com/jhoicas/lms-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lms-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/lms-api/internal/interfaces/http"
	"github.com/jhoicas/lms-api/pkg/config"
	"github.com/jhoicas/lms-api/pkg/jwt"
	"github.com/jhoicas/lms-api/pkg/logger"
	"github.com/jhoicas/lms-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	tokens, err := jwt.NewService(jwt.Config{
		AccessSecret:       cfg.Tokens.AccessSecret,
		AccessTTL:          cfg.Tokens.AccessExpiry,
		RefreshSecret:      cfg.Tokens.RefreshSecret,
		RefreshTTL:         cfg.Tokens.RefreshExpiry,
		VerificationSecret: cfg.Tokens.VerificationSecret,
		VerificationTTL:    cfg.Tokens.VerificationExpiry,
		ResetSecret:        cfg.Tokens.ResetSecret,
		ResetTTL:           cfg.Tokens.ResetExpiry,
		Issuer:             cfg.Tokens.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de tokens")
	}

	adminRepo := postgres.NewAdminRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	individualRepo := postgres.NewIndividualRepository(pool)

	tokenStore := redis.NewTokenStore(rdb, redis.DefaultPrefix)
	mailer := mail.NewSMTPMailer(cfg.Mail, cfg.App.Name, log)
	ucCfg := usecase.Config{ServerURL: cfg.App.ServerURL, MaxPageSize: cfg.Pagination.MaxPageSize}

	authUC := auth.NewAuthUseCase(auth.Repositories{
		Admins:      adminRepo,
		Companies:   companyRepo,
		Employees:   employeeRepo,
		Individuals: individualRepo,
	}, tokens, tokenStore, mailer, auth.Config{ServerURL: cfg.App.ServerURL}, log)
	adminUC := usecase.NewAdminUseCase(adminRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, mailer, ucCfg, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, companyRepo, postgres.NewTxRunner(pool), mailer, ucCfg, log)
	individualUC := usecase.NewIndividualUseCase(individualRepo, mailer, ucCfg, log)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	res := httpRouter.NewResponder(cfg.App.IsProduction(), log)
	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		BodyLimitKB:    cfg.HTTP.BodyLimitKB,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimitMax:   cfg.RateLimit.Max,
		RateLimitTTL:   cfg.RateLimit.Window,
		LimiterStorage: redis.NewStorage(rdb, ""),
	}, res)

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AdminUC:      adminUC,
		CompanyUC:    companyUC,
		EmployeeUC:   employeeUC,
		IndividualUC: individualUC,
		Tokens:       tokens,
		Rotation:     cfg.Tokens.RefreshRotation,
		Cookie: httpRouter.CookieConfig{
			Secure: cfg.Cookie.Secure,
			MaxAge: cfg.Tokens.RefreshExpiry,
		},
		Responder: res,
		Env:       cfg.App.Env,
		Log:       log,
		Metrics:   metrics.Handler(registry),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
