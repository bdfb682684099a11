package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
)

const budgetKey = "monthly_budget"

// SetMonthlyBudget stores the monthly spending limit.
func (s *SQLiteStorage) SetMonthlyBudget(ctx context.Context, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: budget must be positive", common.ErrInvalidConfig)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, budgetKey, strconv.FormatFloat(amount, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("failed to store budget: %w", err)
	}
	return nil
}

// MonthlyBudget returns the stored monthly spending limit.
func (s *SQLiteStorage) MonthlyBudget(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, budgetKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, common.ErrBudgetNotSet
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get budget: %w", err)
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: stored budget %q", common.ErrInvalidConfig, value)
	}
	return amount, nil
}

// SaveSavingsTarget stores a new savings goal. The most recently created
// target is the active one.
func (s *SQLiteStorage) SaveSavingsTarget(ctx context.Context, target *model.SavingsTarget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTarget(target); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO savings_targets (amount, start_date, end_date)
		VALUES (?, ?, ?)
	`, target.Amount, target.StartDate, target.EndDate)
	if err != nil {
		return fmt.Errorf("failed to store savings target: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get savings target id: %w", err)
	}
	target.ID = id
	return nil
}

// ActiveSavingsTarget returns the most recently created savings goal.
func (s *SQLiteStorage) ActiveSavingsTarget(ctx context.Context) (*model.SavingsTarget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var t model.SavingsTarget
	err := s.db.QueryRowContext(ctx, `
		SELECT id, amount, start_date, end_date, created_at
		FROM savings_targets
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&t.ID, &t.Amount, &t.StartDate, &t.EndDate, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrSavingsTargetNotSet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get savings target: %w", err)
	}
	return &t, nil
}
