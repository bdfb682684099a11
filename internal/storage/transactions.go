package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
)

// TransactionFilter narrows a transaction listing. Zero values mean no
// restriction.
type TransactionFilter struct {
	Category model.Category
	Month    string // YYYY-MM
	Date     string // YYYY-MM-DD
	Limit    int
}

// SaveTransactions persists parsed records, skipping any whose hash is
// already stored. It returns the number of newly inserted rows.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.ParsedTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, category, amount, counterparty, balance, fee,
			date, time, account_ref, outstanding_loan, raw
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range transactions {
		txn := &transactions[i]
		res, execErr := stmt.ExecContext(ctx,
			uuid.New().String(),
			txn.Hash(),
			string(txn.Category),
			txn.Amount,
			txn.Counterparty,
			txn.Balance,
			txn.Fee,
			txn.Date,
			txn.Time,
			txn.AccountRef,
			txn.OutstandingLoan,
			txn.Raw,
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert transaction %d: %w", i, execErr)
		}
		n, raErr := res.RowsAffected()
		if raErr != nil {
			return 0, fmt.Errorf("failed to count inserted rows: %w", raErr)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// ListTransactions returns stored transactions matching the filter,
// newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.Month != "" {
		if err := validateMonth(filter.Month); err != nil {
			return nil, err
		}
	}
	if filter.Date != "" {
		if err := validateDate(filter.Date, "date"); err != nil {
			return nil, err
		}
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, category, amount, counterparty, balance, fee,
		       date, time, account_ref, outstanding_loan, raw, created_at
		FROM transactions
	`)

	var conds []string
	var args []any
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Month != "" {
		conds = append(conds, "date LIKE ?")
		args = append(args, filter.Month+"-%")
	}
	if filter.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date)
	}
	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	query.WriteString(" ORDER BY date DESC, created_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var category string
		if scanErr := rows.Scan(
			&t.ID, &category, &t.Amount, &t.Counterparty, &t.Balance, &t.Fee,
			&t.Date, &t.Time, &t.AccountRef, &t.OutstandingLoan, &t.Raw, &t.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		t.Category = model.Category(category)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

// GetTransactionByID fetches a single stored transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var t model.Transaction
	var category string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category, amount, counterparty, balance, fee,
		       date, time, account_ref, outstanding_loan, raw, created_at
		FROM transactions WHERE id = ?
	`, id).Scan(
		&t.ID, &category, &t.Amount, &t.Counterparty, &t.Balance, &t.Fee,
		&t.Date, &t.Time, &t.AccountRef, &t.OutstandingLoan, &t.Raw, &t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	t.Category = model.Category(category)
	return &t, nil
}

// LatestBalance returns the running balance stated by the most recent
// transaction that carries one. Zero when no balance has been seen.
func (s *SQLiteStorage) LatestBalance(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var balance float64
	err := s.db.QueryRowContext(ctx, `
		SELECT balance FROM transactions
		WHERE balance != 0
		ORDER BY date DESC, created_at DESC
		LIMIT 1
	`).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest balance: %w", err)
	}
	return balance, nil
}

// MonthlyExpenditure sums money out, including fees, for a calendar month.
// The result is a positive magnitude.
func (s *SQLiteStorage) MonthlyExpenditure(ctx context.Context, month string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateMonth(month); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(-amount + fee), 0) FROM transactions
		WHERE amount < 0 AND date LIKE ?
	`, month+"-%").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenditure: %w", err)
	}
	return total, nil
}

// MonthlySavings returns the net amount moved into savings products during
// a calendar month. Withdrawals from savings count against it.
func (s *SQLiteStorage) MonthlySavings(ctx context.Context, month string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateMonth(month); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(-amount), 0) FROM transactions
		WHERE category IN (?, ?) AND date LIKE ?
	`, string(model.CategorySavingsOut), string(model.CategorySavingsIn), month+"-%").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum savings: %w", err)
	}
	return total, nil
}

// CategoryTotals returns the signed amount total per category for a
// calendar month.
func (s *SQLiteStorage) CategoryTotals(ctx context.Context, month string) (map[model.Category]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COALESCE(SUM(amount), 0) FROM transactions
		WHERE date LIKE ?
		GROUP BY category
	`, month+"-%")
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[model.Category]float64)
	for rows.Next() {
		var category string
		var total float64
		if scanErr := rows.Scan(&category, &total); scanErr != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", scanErr)
		}
		totals[model.Category(category)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}
	return totals, nil
}
