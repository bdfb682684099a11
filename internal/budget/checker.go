// Package budget evaluates spending and savings against configured goals.
package budget

import (
	"fmt"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// Severity grades how urgent an alert is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a single finding about the account's financial state.
type Alert struct {
	Severity Severity
	Title    string
	Message  string
}

// Snapshot carries everything needed to evaluate the account on a given
// day. It is assembled by the caller from storage; Check itself touches
// nothing but its input.
type Snapshot struct {
	Budget       float64 // monthly limit, 0 when unset
	Expenditure  float64 // month-to-date money out, positive magnitude
	Saved        float64 // month-to-date net savings
	Balance      float64 // latest known running balance
	Target       *model.SavingsTarget
	Today        string // YYYY-MM-DD
	Transactions []model.Transaction // today's transactions
}

// Check evaluates the snapshot and returns any alerts, most urgent first.
func Check(s Snapshot) []Alert {
	var alerts []Alert

	if a := checkBudget(s); a != nil {
		alerts = append(alerts, *a)
	}
	if a := checkSavings(s); a != nil {
		alerts = append(alerts, *a)
	}
	if a := checkBalance(s); a != nil {
		alerts = append(alerts, *a)
	}
	if a := checkLargeExpenses(s); a != nil {
		alerts = append(alerts, *a)
	}
	return alerts
}

func checkBudget(s Snapshot) *Alert {
	if s.Budget <= 0 {
		return nil
	}

	used := s.Expenditure / s.Budget * 100
	switch {
	case used >= 100:
		return &Alert{
			Severity: SeverityCritical,
			Title:    "Budget Exceeded",
			Message:  fmt.Sprintf("You've used %.0f%% of your monthly budget. Consider reviewing your expenses.", used),
		}
	case used >= 75:
		return &Alert{
			Severity: SeverityWarning,
			Title:    "Budget Warning",
			Message:  fmt.Sprintf("You've used %.0f%% of your monthly budget. You're approaching your limit.", used),
		}
	}
	return nil
}

func checkSavings(s Snapshot) *Alert {
	if s.Target == nil {
		return nil
	}

	start, err1 := time.Parse("2006-01-02", s.Target.StartDate)
	end, err2 := time.Parse("2006-01-02", s.Target.EndDate)
	today, err3 := time.Parse("2006-01-02", s.Today)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}

	totalDays := end.Sub(start).Hours() / 24
	if totalDays <= 0 {
		return nil
	}
	daysPassed := today.Sub(start).Hours() / 24
	if daysPassed < 0 {
		return nil
	}

	expected := daysPassed / totalDays * s.Target.Amount
	if s.Saved < expected*0.75 {
		return &Alert{
			Severity: SeverityWarning,
			Title:    "Savings Behind Schedule",
			Message: fmt.Sprintf("You've saved KES %.2f of the KES %.2f expected by now. Consider increasing your contributions.",
				s.Saved, expected),
		}
	}
	return nil
}

func checkBalance(s Snapshot) *Alert {
	if s.Balance >= 0 {
		return nil
	}
	return &Alert{
		Severity: SeverityCritical,
		Title:    "Negative Balance",
		Message:  fmt.Sprintf("Your account balance is negative (KES %.2f). Take action to avoid fees.", -s.Balance),
	}
}

func checkLargeExpenses(s Snapshot) *Alert {
	if s.Budget <= 0 {
		return nil
	}

	// A single day's expense is significant above 5% of the budget.
	significant := s.Budget * 0.05
	total := 0.0
	for _, t := range s.Transactions {
		if t.Date == s.Today && t.Amount < 0 && -t.Amount >= significant {
			total += -t.Amount
		}
	}
	if total == 0 {
		return nil
	}
	return &Alert{
		Severity: SeverityWarning,
		Title:    "Large Expense Detected",
		Message: fmt.Sprintf("You've spent KES %.2f today (%.0f%% of monthly budget).",
			total, total/s.Budget*100),
	}
}
