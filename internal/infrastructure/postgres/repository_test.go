package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Estos tests necesitan una base real (biztime_test). Sin la variable se omiten.
const testDatabaseEnv = "BIZTIME_TEST_DATABASE_URL"

// setupDB abre el pool, migra el esquema y deja la empresa "test" como única fila.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s no definido; se omiten tests de PostgreSQL", testDatabaseEnv)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, _, err = postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM companies`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ('test', 'Test Company One', 'test company for testing')`)
	require.NoError(t, err)
	return pool
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyRepo_CRUD(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewCompanyRepository(pool)

	c := &entity.Company{Code: "test2", Name: "T2", Description: "d"}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByCode(ctx, "test2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.Company{Code: "test2", Name: "T2", Description: "d"}, *got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "test", list[0].Code, "el listado va ordenado por código")
	assert.Equal(t, "test2", list[1].Code)
	assert.Empty(t, list[1].Description, "el listado no trae description")

	upd := &entity.Company{Code: "test2", Name: "T2b", Description: "d2"}
	require.NoError(t, repo.Update(ctx, upd))
	assert.Equal(t, "T2b", upd.Name)

	require.NoError(t, repo.Delete(ctx, "test2"))
	assert.ErrorIs(t, repo.Delete(ctx, "test2"), domain.ErrNotFound)

	got, err = repo.GetByCode(ctx, "test2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyRepo_CreateDuplicado(t *testing.T) {
	pool := setupDB(t)
	repo := postgres.NewCompanyRepository(pool)

	err := repo.Create(context.Background(), &entity.Company{Code: "test", Name: "Otra", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyRepo_UpdateInexistente(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewCompanyRepository(pool)

	err := repo.Update(ctx, &entity.Company{Code: "nope", Name: "N", Description: "D"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La fila existente no cambia.
	got, err := repo.GetByCode(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "Test Company One", got.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceRepo_CRUD(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewInvoiceRepository(pool)

	inv := &entity.Invoice{CompCode: "test", Amt: decimal.NewFromInt(100)}
	require.NoError(t, repo.Create(ctx, inv))
	assert.NotZero(t, inv.ID)
	assert.False(t, inv.Paid, "paid por defecto es false")
	assert.False(t, inv.AddDate.IsZero(), "add_date lo asigna la base")
	assert.Nil(t, inv.PaidDate)
	assert.True(t, decimal.NewFromInt(100).Equal(inv.Amt))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "test", got.CompCode)

	upd, err := repo.UpdateAmount(ctx, inv.ID, decimal.RequireFromString("250.50"))
	require.NoError(t, err)
	assert.Equal(t, "250.5", upd.Amt.String())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID, "el listado va ordenado por id")
	}

	require.NoError(t, repo.Delete(ctx, inv.ID))
	assert.ErrorIs(t, repo.Delete(ctx, inv.ID), domain.ErrNotFound)

	_, err = repo.UpdateAmount(ctx, inv.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceRepo_CreateConEmpresaInexistente(t *testing.T) {
	pool := setupDB(t)
	repo := postgres.NewInvoiceRepository(pool)

	err := repo.Create(context.Background(), &entity.Invoice{CompCode: "nope", Amt: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

// numeric(10,2) admite hasta 99999999.99; un monto mayor es entrada inválida, no un 500.
func TestInvoiceRepo_MontoFueraDeRango(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewInvoiceRepository(pool)

	err := repo.Create(ctx, &entity.Invoice{CompCode: "test", Amt: decimal.RequireFromString("100000000")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inv := &entity.Invoice{CompCode: "test", Amt: decimal.NewFromInt(1)}
	require.NoError(t, repo.Create(ctx, inv))
	_, err = repo.UpdateAmount(ctx, inv.ID, decimal.RequireFromString("100000000"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceRepo_CreateConMontoNegativo(t *testing.T) {
	pool := setupDB(t)
	repo := postgres.NewInvoiceRepository(pool)

	err := repo.Create(context.Background(), &entity.Invoice{CompCode: "test", Amt: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Borrar una empresa elimina sus facturas (ON DELETE CASCADE).
func TestCompanyRepo_DeleteBorraFacturasEnCascada(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	invoices := postgres.NewInvoiceRepository(pool)
	companies := postgres.NewCompanyRepository(pool)

	inv := &entity.Invoice{CompCode: "test", Amt: decimal.NewFromInt(10)}
	require.NoError(t, invoices.Create(ctx, inv))

	require.NoError(t, companies.Delete(ctx, "test"))

	got, err := invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := postgres.NewTxRunner(pool).Run(ctx, func(
		_ postgres.Querier,
		companies repository.CompanyRepository,
		_ repository.InvoiceRepository,
	) error {
		require.NoError(t, companies.Create(ctx, &entity.Company{Code: "tx", Name: "TX", Description: "d"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := postgres.NewCompanyRepository(pool).GetByCode(ctx, "tx")
	require.NoError(t, err)
	assert.Nil(t, got, "la empresa no debe persistir tras el rollback")
}

func TestTxRunner_Commit(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	var id int64
	err := postgres.NewTxRunner(pool).Run(ctx, func(
		_ postgres.Querier,
		_ repository.CompanyRepository,
		invoices repository.InvoiceRepository,
	) error {
		inv := &entity.Invoice{CompCode: "test", Amt: decimal.NewFromInt(42)}
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		id = inv.ID
		return nil
	})
	require.NoError(t, err)

	got, err := postgres.NewInvoiceRepository(pool).GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "42", got.Amt.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Migraciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMigrate_Idempotente(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	from, to, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int32(1), to)
	assert.Equal(t, to, from, "una segunda ejecución no aplica nada")

	var version int32
	require.NoError(t, pool.QueryRow(ctx, `SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, int32(1), version)
}
