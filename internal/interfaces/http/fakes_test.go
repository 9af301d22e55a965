package http_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// memStore simula las dos tablas con la misma semántica que el esquema:
// FK comp_code, ON DELETE CASCADE, id serial y defaults de paid/add_date.
type memStore struct {
	mu        sync.Mutex
	companies map[string]entity.Company
	invoices  map[int64]entity.Invoice
	nextID    int64
}

var testAddDate = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]entity.Company{},
		invoices:  map[int64]entity.Invoice{},
		nextID:    1,
	}
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, &entity.Company{Code: c.Code, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r memCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[company.Code]; ok {
		return domain.ErrDuplicate
	}
	r.s.companies[company.Code] = *company
	return nil
}

func (r memCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[company.Code]; !ok {
		return domain.ErrNotFound
	}
	r.s.companies[company.Code] = *company
	return nil
}

func (r memCompanyRepo) Delete(_ context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, code)
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			delete(r.s.invoices, id)
		}
	}
	return nil
}

type memInvoiceRepo struct{ s *memStore }

// checkInt4 reproduce el rechazo de pgx al codificar un id fuera de int4 (invoices.id es serial).
func checkInt4(id int64) error {
	if id > math.MaxInt32 || id < math.MinInt32 {
		return fmt.Errorf("unable to encode %d into binary format for int4: out of range", id)
	}
	return nil
}

func (r memInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		inv := inv
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	if err := checkInt4(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r memInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[invoice.CompCode]; !ok {
		return domain.ErrCompanyNotFound
	}
	invoice.ID = r.s.nextID
	invoice.Paid = false
	invoice.AddDate = testAddDate
	invoice.PaidDate = nil
	r.s.nextID++
	r.s.invoices[invoice.ID] = *invoice
	return nil
}

func (r memInvoiceRepo) UpdateAmount(_ context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	if err := checkInt4(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inv.Amt = amt
	r.s.invoices[id] = inv
	return &inv, nil
}

func (r memInvoiceRepo) Delete(_ context.Context, id int64) error {
	if err := checkInt4(id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

// brokenCompanyRepo simula una base caída.
type brokenCompanyRepo struct{ memCompanyRepo }

var errDBDown = errors.New("conexión rechazada")

func (brokenCompanyRepo) List(context.Context) ([]*entity.Company, error) {
	return nil, errDBDown
}
