package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/learnhub/internal/activity"
	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/config"
	"github.com/nfrund/learnhub/internal/handlers"
	appmiddleware "github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/module"
	"github.com/nfrund/learnhub/internal/pubsub"
	"github.com/nfrund/learnhub/internal/registry"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/session"
	"github.com/nfrund/learnhub/web"
)

// activityCapacity is how many events the in-process activity log keeps.
const activityCapacity = 50

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	api        *apiclient.Client
	renderer   rendering.Renderer
	bridge     *pubsub.WatermillBridge
	modules    []module.Module
	closeStore func() error
	cancel     context.CancelFunc
}

// New creates a new Server instance with every module booted.
func New(cfg config.Provider) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())

	store, closeStore, err := session.NewStore(ctx, cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(echosession.Middleware(store))
	e.Use(appmiddleware.LoadViewer(nil))

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}
	e.StaticFS("/static", static)

	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e, renderer, cfg.GetFilesBaseURL())

	api := apiclient.New(cfg.GetAPIBaseURL(), apiclient.NewHTTPClient(cfg.GetAPITimeout()))
	bridge := pubsub.NewWatermillBridge(slog.Default())
	activityLog := activity.NewLog(activityCapacity)

	reg := registry.New(cfg)
	registry.Set(reg, registry.APIClientKey, api)
	registry.Set(reg, registry.RendererKey, rendering.Renderer(renderer))
	registry.Set(reg, registry.PublisherKey, pubsub.Publisher(bridge))
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bridge))
	registry.Set(reg, registry.ActivityLogKey, activityLog)

	if err := activity.Subscribe(ctx, bridge, activityLog); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe activity log: %w", err)
	}

	s := &Server{
		E:          e,
		Cfg:        cfg,
		Registry:   reg,
		api:        api,
		renderer:   renderer,
		bridge:     bridge,
		modules:    AppModules(),
		closeStore: closeStore,
		cancel:     cancel,
	}

	if err := s.bootModules(ctx); err != nil {
		cancel()
		return nil, err
	}
	s.RegisterRoutes()
	return s, nil
}

func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}
