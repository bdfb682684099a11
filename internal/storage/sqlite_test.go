package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTransaction(category model.Category, amount float64, counterparty, date string) model.ParsedTransaction {
	return model.ParsedTransaction{
		Category:     category,
		Amount:       category.ApplySign(amount),
		Counterparty: counterparty,
		Balance:      1000,
		Date:         date,
		Time:         "2:30 PM",
		Raw:          "test message " + counterparty + " " + date,
	}
}

func TestSaveTransactionsDeduplicates(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txns := []model.ParsedTransaction{
		testTransaction(model.CategorySent, 500, "JOHN DOE", "2025-06-01"),
		testTransaction(model.CategoryReceived, 1000, "JANE SMITH", "2025-06-02"),
	}

	inserted, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Scanning the same dump again inserts nothing.
	inserted, err = store.SaveTransactions(ctx, txns)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	all, err := store.ListTransactions(ctx, TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSaveTransactionsValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, nil)
	assert.Error(t, err)

	_, err = store.SaveTransactions(ctx, []model.ParsedTransaction{})
	assert.Error(t, err)

	_, err = store.SaveTransactions(ctx, []model.ParsedTransaction{
		{Category: model.CategorySent, Counterparty: "X", Date: "1/6/25"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListTransactionsFilters(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction(model.CategorySent, 500, "JOHN DOE", "2025-06-01"),
		testTransaction(model.CategorySent, 200, "MARY W", "2025-07-03"),
		testTransaction(model.CategoryAirtime, 100, "Airtime Purchase", "2025-06-05"),
	})
	require.NoError(t, err)

	byCategory, err := store.ListTransactions(ctx, TransactionFilter{Category: model.CategorySent})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byMonth, err := store.ListTransactions(ctx, TransactionFilter{Month: "2025-06"})
	require.NoError(t, err)
	require.Len(t, byMonth, 2)
	// Newest first.
	assert.Equal(t, "2025-06-05", byMonth[0].Date)

	byDate, err := store.ListTransactions(ctx, TransactionFilter{Date: "2025-07-03"})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "MARY W", byDate[0].Counterparty)

	limited, err := store.ListTransactions(ctx, TransactionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetTransactionByID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction(model.CategoryDeposit, 1000, "M-PESA AGENT", "2025-06-01"),
	})
	require.NoError(t, err)

	all, err := store.ListTransactions(ctx, TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := store.GetTransactionByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryDeposit, got.Category)
	assert.Equal(t, 1000.0, got.Amount)

	_, err = store.GetTransactionByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLatestBalance(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	balance, err := store.LatestBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)

	older := testTransaction(model.CategorySent, 500, "JOHN DOE", "2025-06-01")
	older.Balance = 2000
	newer := testTransaction(model.CategoryReceived, 300, "JANE SMITH", "2025-06-04")
	newer.Balance = 2300

	_, err = store.SaveTransactions(ctx, []model.ParsedTransaction{older, newer})
	require.NoError(t, err)

	balance, err = store.LatestBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2300.0, balance)
}

func TestMonthlyExpenditure(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	spend := testTransaction(model.CategorySent, 500, "JOHN DOE", "2025-06-01")
	spend.Fee = 23
	income := testTransaction(model.CategoryReceived, 1000, "JANE SMITH", "2025-06-02")
	otherMonth := testTransaction(model.CategoryBuyGoods, 250, "NAIVAS", "2025-07-01")

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{spend, income, otherMonth})
	require.NoError(t, err)

	total, err := store.MonthlyExpenditure(ctx, "2025-06")
	require.NoError(t, err)
	assert.Equal(t, 523.0, total)

	_, err = store.MonthlyExpenditure(ctx, "June 2025")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMonthlySavings(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction(model.CategorySavingsOut, 5000, "M-Shwari Savings", "2025-06-01"),
		testTransaction(model.CategorySavingsIn, 2000, "M-Shwari Withdrawal", "2025-06-10"),
		testTransaction(model.CategorySent, 300, "JOHN DOE", "2025-06-11"),
	})
	require.NoError(t, err)

	net, err := store.MonthlySavings(ctx, "2025-06")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, net)
}

func TestCategoryTotals(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction(model.CategorySent, 500, "JOHN DOE", "2025-06-01"),
		testTransaction(model.CategorySent, 200, "MARY W", "2025-06-02"),
		testTransaction(model.CategoryReceived, 1000, "JANE SMITH", "2025-06-03"),
	})
	require.NoError(t, err)

	totals, err := store.CategoryTotals(ctx, "2025-06")
	require.NoError(t, err)
	assert.Equal(t, -700.0, totals[model.CategorySent])
	assert.Equal(t, 1000.0, totals[model.CategoryReceived])
}

func TestMonthlyBudgetRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.MonthlyBudget(ctx)
	assert.ErrorIs(t, err, common.ErrBudgetNotSet)

	require.NoError(t, store.SetMonthlyBudget(ctx, 20000))
	budget, err := store.MonthlyBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, budget)

	// Updating overwrites the stored value.
	require.NoError(t, store.SetMonthlyBudget(ctx, 25000))
	budget, err = store.MonthlyBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, budget)

	assert.Error(t, store.SetMonthlyBudget(ctx, -5))
}

func TestSavingsTargetRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.ActiveSavingsTarget(ctx)
	assert.ErrorIs(t, err, common.ErrSavingsTargetNotSet)

	first := &model.SavingsTarget{Amount: 10000, StartDate: "2025-06-01", EndDate: "2025-06-30"}
	require.NoError(t, store.SaveSavingsTarget(ctx, first))
	assert.NotZero(t, first.ID)

	second := &model.SavingsTarget{Amount: 15000, StartDate: "2025-07-01", EndDate: "2025-07-31"}
	require.NoError(t, store.SaveSavingsTarget(ctx, second))

	active, err := store.ActiveSavingsTarget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, active.Amount)
	assert.Equal(t, "2025-07-01", active.StartDate)

	bad := &model.SavingsTarget{Amount: 100, StartDate: "2025-08-01", EndDate: "2025-07-01"}
	assert.ErrorIs(t, store.SaveSavingsTarget(ctx, bad), ErrInvalidTarget)
}
