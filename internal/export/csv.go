// Package export renders stored transactions for use outside the
// application.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/nmwangi/pesaflow/internal/model"
)

var csvHeader = []string{
	"date", "time", "category", "counterparty", "amount", "fee",
	"balance", "account_ref", "outstanding_loan",
}

// WriteCSV renders transactions as CSV, oldest first.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, tx := range sorted {
		record := []string{
			tx.Date,
			tx.Time,
			string(tx.Category),
			tx.Counterparty,
			fmt.Sprintf("%.2f", tx.Amount),
			fmt.Sprintf("%.2f", tx.Fee),
			fmt.Sprintf("%.2f", tx.Balance),
			tx.AccountRef,
			fmt.Sprintf("%.2f", tx.OutstandingLoan),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing transaction: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing writer: %w", err)
	}
	return nil
}
