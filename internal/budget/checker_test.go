package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangi/pesaflow/internal/model"
)

func findAlert(alerts []Alert, title string) *Alert {
	for i := range alerts {
		if alerts[i].Title == title {
			return &alerts[i]
		}
	}
	return nil
}

func TestCheckBudgetThresholds(t *testing.T) {
	tests := []struct {
		name        string
		expenditure float64
		wantTitle   string
	}{
		{"well under budget", 5000, ""},
		{"approaching limit", 16000, "Budget Warning"},
		{"exceeded", 21000, "Budget Exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := Check(Snapshot{Budget: 20000, Expenditure: tt.expenditure, Today: "2025-06-15"})
			if tt.wantTitle == "" {
				assert.Empty(t, alerts)
				return
			}
			require.NotNil(t, findAlert(alerts, tt.wantTitle))
		})
	}
}

func TestCheckBudgetUnsetIsSilent(t *testing.T) {
	alerts := Check(Snapshot{Expenditure: 99999, Today: "2025-06-15"})
	assert.Empty(t, alerts)
}

func TestCheckSavingsProgress(t *testing.T) {
	target := &model.SavingsTarget{
		Amount:    10000,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	}

	// Halfway through the period, half the target is expected; anything
	// under 75% of that trips the alert.
	behind := Check(Snapshot{Target: target, Saved: 1000, Today: "2025-06-16"})
	require.NotNil(t, findAlert(behind, "Savings Behind Schedule"))

	onTrack := Check(Snapshot{Target: target, Saved: 5000, Today: "2025-06-16"})
	assert.Nil(t, findAlert(onTrack, "Savings Behind Schedule"))

	// Before the period starts there is nothing to be behind on.
	early := Check(Snapshot{Target: target, Saved: 0, Today: "2025-05-20"})
	assert.Empty(t, early)
}

func TestCheckNegativeBalance(t *testing.T) {
	alerts := Check(Snapshot{Balance: -150.75, Today: "2025-06-15"})
	a := findAlert(alerts, "Negative Balance")
	require.NotNil(t, a)
	assert.Equal(t, SeverityCritical, a.Severity)
	assert.Contains(t, a.Message, "150.75")

	assert.Empty(t, Check(Snapshot{Balance: 500, Today: "2025-06-15"}))
}

func TestCheckLargeExpenses(t *testing.T) {
	day := "2025-06-15"
	txn := func(amount float64, date string) model.Transaction {
		return model.Transaction{
			ParsedTransaction: model.ParsedTransaction{
				Category: model.CategorySent,
				Amount:   amount,
				Date:     date,
			},
		}
	}

	// 5% of 20,000 is 1,000; only today's expenses at or above that count.
	alerts := Check(Snapshot{
		Budget: 20000,
		Today:  day,
		Transactions: []model.Transaction{
			txn(-1500, day),
			txn(-500, day),
			txn(-3000, "2025-06-14"),
		},
	})
	a := findAlert(alerts, "Large Expense Detected")
	require.NotNil(t, a)
	assert.Contains(t, a.Message, "1500.00")

	quiet := Check(Snapshot{
		Budget:       20000,
		Today:        day,
		Transactions: []model.Transaction{txn(-500, day)},
	})
	assert.Nil(t, findAlert(quiet, "Large Expense Detected"))
}
