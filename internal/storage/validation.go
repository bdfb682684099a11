// Package storage provides the data persistence layer for the pesaflow application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nmwangi/pesaflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidTarget      = errors.New("invalid savings target")
)

var (
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMonth ensures a month key is in YYYY-MM form.
func validateMonth(month string) error {
	if !monthRe.MatchString(month) {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}

// validateDate ensures a calendar date is in ISO form.
func validateDate(date string, paramName string) error {
	if !dateRe.MatchString(date) {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, paramName, date)
	}
	return nil
}

// validateTransactions validates a slice of parsed transactions.
func validateTransactions(transactions []model.ParsedTransaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range transactions {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single parsed transaction.
func validateTransaction(txn *model.ParsedTransaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if txn.Counterparty == "" {
		return fmt.Errorf("%w: missing counterparty", ErrInvalidTransaction)
	}
	if err := validateDate(txn.Date, "date"); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	return nil
}

// validateTarget validates a savings target.
func validateTarget(target *model.SavingsTarget) error {
	if target == nil {
		return fmt.Errorf("%w: target", ErrNilParameter)
	}
	if target.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTarget)
	}
	if err := validateDate(target.StartDate, "start_date"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, err)
	}
	if err := validateDate(target.EndDate, "end_date"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, err)
	}
	if target.EndDate <= target.StartDate {
		return fmt.Errorf("%w: end_date must follow start_date", ErrInvalidTarget)
	}
	return nil
}
