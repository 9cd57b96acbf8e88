package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/foodcourt/internal/client/auth"
	"github.com/dmitrijs2005/foodcourt/internal/client/cart"
	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/config"
	"github.com/dmitrijs2005/foodcourt/internal/client/security"
	"github.com/dmitrijs2005/foodcourt/internal/client/services"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// App wires the storefront CLI: the REST client, the shared guard layer
// (rate limiter, sanitizer), the observable session and cart stores, and the
// application services built on top of them.
type App struct {
	config *config.Config
	logger logging.Logger

	apiClient client.Client
	session   *auth.Store
	cart      *cart.Store

	authService *services.AuthService
	menuService *services.MenuService
	seedService *services.SeedService

	reader *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault(os.Stderr, cfg.Debug)

	apiClient, err := client.NewRESTClient(client.Options{
		Endpoint:   cfg.Endpoint,
		ProjectID:  cfg.ProjectID,
		APIKey:     cfg.APIKey,
		DatabaseID: cfg.DatabaseID,
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	limiter := security.NewRateLimiter(security.DefaultMaxAttempts, security.DefaultWindow)
	sanitizer := security.NewSanitizer(logger, nil, cfg.Debug)
	session := auth.NewStore(apiClient, cfg.UsersCollection, logger)

	collections := services.Collections{
		Users:      cfg.UsersCollection,
		Categories: cfg.CategoriesCollection,
		Menu:       cfg.MenuCollection,
	}

	return &App{
		config:      cfg,
		logger:      logger,
		apiClient:   apiClient,
		session:     session,
		cart:        cart.NewStore(),
		authService: services.NewAuthService(apiClient, limiter, sanitizer, session, cfg.UsersCollection, logger),
		menuService: services.NewMenuService(apiClient, sanitizer, collections, logger),
		seedService: services.NewSeedService(apiClient, collections, logger),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// getStatus renders the prompt status segment: the signed-in user's name and
// the cart size, when either is present.
func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.Authenticated && snap.User != nil {
		s = snap.User.Name
	}
	if n := a.cart.TotalItems(); n > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

func (a *App) seedEnabled() bool {
	return a.config.Debug
}

// Run restores any live session and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()

	if err := a.session.Fetch(ctx); err != nil {
		a.logger.Debug(ctx, "session restore failed", "error", err)
	}

	printlnFn("Welcome to the food court (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
