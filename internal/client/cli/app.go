package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/storeadmin/internal/client/api"
	"github.com/dmitrijs2005/storeadmin/internal/client/config"
	"github.com/dmitrijs2005/storeadmin/internal/client/notify"
	"github.com/dmitrijs2005/storeadmin/internal/client/session"
	"github.com/dmitrijs2005/storeadmin/internal/client/store"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

type App struct {
	config   *config.Config
	client   api.Client
	session  *session.Manager
	store    *store.Store
	notify   *notify.Center
	log      logging.Logger
	reader   *bufio.Reader
	validate *validator.Validate
}

func NewApp(c *config.Config) (*App, error) {
	sessStore, err := session.OpenStore(c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	sess := session.NewManager(sessStore)
	apiClient := api.NewHTTPClient(c.APIBaseURL)
	nc := notify.NewCenter(c.ToastTTL)
	st := store.New(apiClient, sess, nc, logger)

	return &App{
		config:   c,
		client:   apiClient,
		session:  sess,
		store:    st,
		notify:   nc,
		log:      logger,
		reader:   bufio.NewReader(os.Stdin),
		validate: validator.New(),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// Run restores a persisted session if one exists, wires toast printing,
// and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	_ = a.notify.Subscribe(func(t notify.Toast) {
		printlnFn(fmt.Sprintf("[%s] %s", t.Severity, t.Message))
	})

	restored, err := a.session.Restore()
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if restored {
		a.client.SetToken(a.session.Token())
		a.store.HandleLogin(ctx)
		printlnFn("Session restored.")
	}

	printlnFn("storeadmin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
