package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	jwtauth "github.com/xw1nchester/nailsite/internal/auth/jwt"
	"github.com/xw1nchester/nailsite/internal/config"
	"github.com/xw1nchester/nailsite/internal/handlers"
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/metrics"
	"github.com/xw1nchester/nailsite/internal/page"
	sitedb "github.com/xw1nchester/nailsite/internal/site/db"
	sitehandler "github.com/xw1nchester/nailsite/internal/site/handler"
	siteservice "github.com/xw1nchester/nailsite/internal/site/service"
	"github.com/xw1nchester/nailsite/internal/theme"
	backendclient "github.com/xw1nchester/nailsite/pkg/client/backend"
	redisclient "github.com/xw1nchester/nailsite/pkg/client/redis"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/nailsite/docs"
)

type App struct {
	HTTPServer *http.Server
	Host       *page.Host
	redis      *redis.Client
	logger     *zap.Logger
}

func NewApp(log *zap.Logger, cfg config.Config) (*App, error) {
	m := metrics.New()

	backend, err := backendclient.New(
		backendclient.Config{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
		},
		m,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	rdb := connectRedis(log, cfg.Redis)

	siteRepository := sitedb.NewCachedRepository(
		sitedb.NewRepository(backend, log),
		rdb,
		sitedb.CacheTTL{
			Salon:    cfg.Cache.SiteTTL,
			Preview:  cfg.Cache.PreviewTTL,
			Template: cfg.Cache.TemplateTTL,
		},
		m,
		log,
	)

	siteService := siteservice.New(siteRepository, cfg.Site.MediaURL, log)

	registry := layout.DefaultRegistry()

	urls := page.URLs{
		Listing:   cfg.Site.ListingURL,
		Templates: cfg.Site.TemplatesURL,
		Login:     cfg.Site.LoginURL,
		Portal:    cfg.Site.PortalURL,
	}

	host := page.NewHost(
		siteService,
		registry,
		page.Options{
			URLs: urls,
			Placeholders: theme.Placeholders{
				Cover: cfg.Site.PlaceholderCover,
				About: cfg.Site.PlaceholderAbout,
				Logo:  cfg.Site.PlaceholderLogo,
			},
			ShowAdminBar: !cfg.Site.HideAdminBar,
			Observer:     m,
		},
		log,
	)

	tokenManager := jwtauth.NewTokenManager(cfg.Auth.Secret)

	viewerMiddleware := jwtauth.NewMiddleware(log, tokenManager, siteService, cfg.Auth.CookieName)

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		LoggingMiddleware(log),
		m.Middleware,
		middleware.Recoverer,
	)

	if cfg.HTTPServer.Timeout > 0 {
		router.Use(middleware.Timeout(cfg.HTTPServer.Timeout))
	}

	router.Get("/swagger/*", httpSwagger.Handler())
	router.Handle("/metrics", m.Handler())
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.HTTPServer.StaticDir))))

	siteHandler := sitehandler.New(host, siteService, urls, log)

	log.Info("register site handlers")

	handlers.Group(router, []func(http.Handler) http.Handler{viewerMiddleware}, siteHandler)

	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}))

		r.Get("/ping", PingHandler)

		apiHandler := sitehandler.NewAPI(host, registry, log)

		log.Info("register api handlers")

		handlers.Group(r, []func(http.Handler) http.Handler{viewerMiddleware}, apiHandler)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		Host:       host,
		redis:      rdb,
		logger:     log,
	}, nil
}

// connectRedis returns nil when redis is not configured or not reachable,
// which leaves the response cache disabled.
func connectRedis(log *zap.Logger, cfg config.Redis) *redis.Client {
	if cfg.Addr == "" {
		log.Info("redis is not configured, response cache disabled")
		return nil
	}

	rdb, err := redisclient.New(context.Background(), redisclient.Config{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		log.Warn("redis is unavailable, response cache disabled", zap.Error(err))
		return nil
	}

	return rdb
}

func (a *App) Run() error {
	a.logger.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic("failed to start server: " + err.Error())
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)

	if a.redis != nil {
		if closeErr := a.redis.Close(); closeErr != nil {
			a.logger.Warn("failed to close redis client", zap.Error(closeErr))
		}
	}

	return err
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
