package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/storeadmin/internal/client/api"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/notify"
	"github.com/dmitrijs2005/storeadmin/internal/client/session"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

// ErrCategoryInUse is returned when a category delete is refused locally
// because products still reference it. No request is sent in that case.
var ErrCategoryInUse = errors.New("category has associated products")

type Store struct {
	client  api.Client
	session *session.Manager
	notify  *notify.Center
	log     logging.Logger

	mu         sync.Mutex
	categories []models.Category
	products   []models.Product
	employees  []models.Employee

	salaries         []models.SalaryRecord
	salaryEmployeeID string

	editingCategory *models.Category
	editingProduct  *models.Product
	editingEmployee *models.Employee
	salaryEmployee  *models.Employee
}

func New(client api.Client, sess *session.Manager, nc *notify.Center, log logging.Logger) *Store {
	return &Store{client: client, session: sess, notify: nc, log: log}
}

// HandleLogin populates all three entity mirrors. The fetches run
// concurrently; each one touches only its own mirror.
func (s *Store) HandleLogin(ctx context.Context) {
	var wg sync.WaitGroup
	for _, refresh := range []func(context.Context){
		s.RefreshCategories,
		s.RefreshProducts,
		s.RefreshEmployees,
	} {
		wg.Add(1)
		go func(fn func(context.Context)) {
			defer wg.Done()
			fn(ctx)
		}(refresh)
	}
	wg.Wait()
}

// HandleLogout discards every mirror and selection slot. Fetches still
// in flight are fenced off by the generation bump the session manager
// performed before this is called.
func (s *Store) HandleLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = nil
	s.products = nil
	s.employees = nil
	s.salaries = nil
	s.salaryEmployeeID = ""
	s.editingCategory = nil
	s.editingProduct = nil
	s.editingEmployee = nil
	s.salaryEmployee = nil
}

// report translates the failure taxonomy into a user-facing toast.
// An unauthenticated response also destroys the session: the token,
// the persisted copy, and every mirror and selection slot.
func (s *Store) report(ctx context.Context, err error, what string) {
	s.log.Warn(ctx, "operation failed", "op", what, "error", err)

	if errors.Is(err, api.ErrUnauthorized) {
		if s.session.Authenticated() {
			s.session.End()
			s.client.SetToken("")
			s.HandleLogout()
			s.notify.Error("Session expired. Please log in again.")
		}
		return
	}
	if re, ok := api.IsRejected(err); ok {
		s.notify.Error(re.Message)
		return
	}
	s.notify.Error("Could not reach the server. Please try again.")
}

// current reports whether a response issued at generation gen is still
// relevant. Callers must hold s.mu.
func (s *Store) current(gen uint64) bool {
	return gen == s.session.Generation()
}
