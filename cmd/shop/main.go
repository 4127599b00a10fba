package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	adapterrepo "shopsync/internal/adapter/repository"
	"shopsync/internal/domain/entity"
	domainrepo "shopsync/internal/domain/repository"
	"shopsync/internal/infrastructure/localstate"
	"shopsync/internal/usecase"
	"shopsync/pkg/config"
	"shopsync/pkg/logger"
)

// app wires the client stack for one CLI invocation. The session is
// resumed from SHOPSYNC_TOKEN for commands that need one.
type app struct {
	cfg      *config.Config
	cache    *localstate.Cache
	states   *adapterrepo.SQLiteStateRepository
	session  *usecase.SessionUseCase
	sync     *usecase.SyncController
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	checkout *usecase.CheckoutUseCase
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, cache: localstate.New()}

	states, err := adapterrepo.OpenStateRepository(cfg.StateDBPath)
	if err != nil {
		// Local mirroring is best-effort; run without it.
		logger.LogPersistenceError("open", err)
	} else {
		a.states = states
	}

	client := adapterrepo.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeout)*time.Second, func() string {
		if sess := a.session.Current(); sess != nil {
			return sess.Token
		}
		return ""
	})

	cartRemote := adapterrepo.NewHTTPCartRepository(client)
	wishlistRemote := adapterrepo.NewHTTPWishlistRepository(client)
	productRemote := adapterrepo.NewHTTPProductRepository(client)
	orderRemote := adapterrepo.NewHTTPOrderRepository(client)
	authRemote := adapterrepo.NewHTTPAuthRepository(client)

	var statesPort domainrepo.StateRepository
	if a.states != nil {
		statesPort = a.states
	}

	a.session = usecase.NewSessionUseCase(authRemote, cartRemote, wishlistRemote, statesPort, a.cache)
	currentSession := func() *entity.Session { return a.session.Current() }
	a.sync = usecase.NewSyncController(a.cache, cartRemote, wishlistRemote, statesPort, currentSession)
	a.catalog = usecase.NewCatalogUseCase(productRemote)
	a.orders = usecase.NewOrderUseCase(orderRemote, currentSession)
	a.checkout = usecase.NewCheckoutUseCase(orderRemote, a.cache, statesPort, currentSession)

	return a, nil
}

func (a *app) close() {
	if a.sync != nil {
		a.sync.Close()
	}
	if a.states != nil {
		_ = a.states.Close()
	}
}

// requireSession resumes from the stored token and hydrates local state.
func (a *app) requireSession(ctx context.Context) error {
	if a.cfg.SessionToken == "" {
		return fmt.Errorf("not signed in: run `shop login` and export SHOPSYNC_TOKEN")
	}
	_, err := a.session.Resume(ctx, a.cfg.SessionToken)
	return err
}

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "shopsync - storefront client with offline-tolerant cart sync",
	Long: `shop is the command-line surface of the shopsync client: browse the
catalog, manage your cart and wishlist, check out, and track orders.
Cart and wishlist changes apply locally first and are synced to the
backend; failures roll the local state back.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		cartCmd,
		wishlistCmd,
		searchCmd,
		ordersCmd,
		checkoutCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
