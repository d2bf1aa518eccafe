package main

import (
	"context"
	"fmt"
	"os"

	authapp "github.com/dwikikusuma/qkart-client/internal/auth/app"
	authrest "github.com/dwikikusuma/qkart-client/internal/auth/infra/rest"
	"github.com/dwikikusuma/qkart-client/internal/backend"
	cartapp "github.com/dwikikusuma/qkart-client/internal/cart/app"
	cartrest "github.com/dwikikusuma/qkart-client/internal/cart/infra/rest"
	catalogapp "github.com/dwikikusuma/qkart-client/internal/catalog/app"
	catalogrest "github.com/dwikikusuma/qkart-client/internal/catalog/infra/rest"
	checkoutapp "github.com/dwikikusuma/qkart-client/internal/checkout/app"
	"github.com/dwikikusuma/qkart-client/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"github.com/dwikikusuma/qkart-client/internal/session"
	storefrontapp "github.com/dwikikusuma/qkart-client/internal/storefront/app"
	"github.com/dwikikusuma/qkart-client/pkg/config"
	"github.com/dwikikusuma/qkart-client/pkg/logger"
	"github.com/dwikikusuma/qkart-client/pkg/shutdown"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	endpoint   string
)

var rootCmd = &cobra.Command{
	Use:   "qkart",
	Short: "QKart storefront client",
	Long: `qkart is a terminal client for the QKart commerce backend.

Browse and search the catalog, manage your cart and review an order before
checkout. Run "qkart browse" for the interactive storefront.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

// app bundles the wired services for one command invocation.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	sessions session.Store
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	auth     *authapp.Service
	checkout *checkoutapp.Service
	store    *storefrontapp.Service
	ctx      context.Context
	stop     context.CancelFunc
}

// newApp wires the full client. The notifier decides where user-facing
// notices land: the terminal for one-shot commands, the TUI's recorder for
// browse.
func newApp(notifier notify.Notifier) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	log, err := logger.New(logger.Options{
		Service: "qkart",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	ctx, stop := shutdown.WithSignals(context.Background())

	client := backend.NewClient(cfg.Endpoint, cfg.Timeout(), log)
	sessions := session.NewFileStore(cfg.SessionFile)

	catalog := catalogapp.NewService(catalogrest.NewCatalogGateway(client), notifier, log)
	cart := cartapp.NewService(cartrest.NewCartGateway(client), notifier, log)
	auth := authapp.NewService(authrest.NewAuthGateway(client), sessions, notifier, log)
	checkout := checkoutapp.NewService(sessions, adapter.NewLiveCartReader(sessions, cart, catalog))
	store := storefrontapp.NewService(ctx, catalog, cart, sessions, cfg.DebounceWindow(), log)

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		catalog:  catalog,
		cart:     cart,
		auth:     auth,
		checkout: checkout,
		store:    store,
		ctx:      ctx,
		stop:     stop,
	}, nil
}

func (a *app) close() {
	a.store.Close()
	a.stop()
	_ = a.log.Sync()
}

// terminalNotifier prints notices the way the web client toasts them.
func terminalNotifier() notify.Notifier {
	return notify.Func(func(message string, severity notify.Severity) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", severity, message)
	})
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.qkart/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "override the backend endpoint")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, productsCmd, cartCmd, checkoutCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
