// Package model defines the domain types shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Category identifies the kind of financial event described by an M-Pesa
// notification. The set is closed: the parser never emits a category
// outside this list.
type Category string

const (
	// CategorySent is a peer-to-peer transfer out of the account.
	CategorySent Category = "sent"
	// CategoryReceived is a peer-to-peer transfer into the account.
	CategoryReceived Category = "received"
	// CategoryWithdrawal is an agent cash-out.
	CategoryWithdrawal Category = "withdrawal"
	// CategoryDeposit is an agent cash-in.
	CategoryDeposit Category = "deposit"
	// CategoryBuyGoods is a till-number merchant payment.
	CategoryBuyGoods Category = "buy_goods"
	// CategoryPayBill is an account-number merchant payment.
	CategoryPayBill Category = "pay_bill"
	// CategoryAirtime is an airtime purchase.
	CategoryAirtime Category = "airtime"
	// CategorySavingsOut is a transfer to a savings product (M-Shwari,
	// lock savings, KCB fixed/target savings).
	CategorySavingsOut Category = "savings_transfer_out"
	// CategorySavingsIn is a transfer back from a savings product.
	CategorySavingsIn Category = "savings_transfer_in"
	// CategoryLoanDisbursement is a Fuliza overdraft draw-down.
	CategoryLoanDisbursement Category = "loan_disbursement"
	// CategoryLoanRepayment is a full or partial Fuliza repayment.
	CategoryLoanRepayment Category = "loan_repayment"
	// CategoryBalanceInquiry is a balance statement with no money movement.
	CategoryBalanceInquiry Category = "balance_inquiry"
	// CategoryFulizaCharge is a Fuliza interest or fee notice with no
	// money movement.
	CategoryFulizaCharge Category = "fuliza_charge"
)

// Categories lists every category the parser can emit.
var Categories = []Category{
	CategorySent,
	CategoryReceived,
	CategoryWithdrawal,
	CategoryDeposit,
	CategoryBuyGoods,
	CategoryPayBill,
	CategoryAirtime,
	CategorySavingsOut,
	CategorySavingsIn,
	CategoryLoanDisbursement,
	CategoryLoanRepayment,
	CategoryBalanceInquiry,
	CategoryFulizaCharge,
}

// Sign returns the direction of money movement for the category:
// -1 for money leaving the account, +1 for money entering, 0 for
// notifications with no movement.
func (c Category) Sign() float64 {
	switch c {
	case CategorySent, CategoryWithdrawal, CategoryBuyGoods, CategoryPayBill,
		CategoryAirtime, CategorySavingsOut, CategoryLoanRepayment:
		return -1
	case CategoryReceived, CategoryDeposit, CategorySavingsIn,
		CategoryLoanDisbursement:
		return 1
	case CategoryBalanceInquiry, CategoryFulizaCharge:
		return 0
	}
	return 0
}

// ApplySign converts an unsigned amount magnitude into the signed amount
// for this category. Notification text never carries a sign; the category
// alone determines direction.
func (c Category) ApplySign(magnitude float64) float64 {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	return c.Sign() * magnitude
}

// ParsedTransaction is the structured record extracted from a single
// M-Pesa notification. It is a pure value: constructed once by the parser
// and owned by the caller afterwards.
type ParsedTransaction struct {
	Category        Category `json:"category"`
	Amount          float64  `json:"amount"`
	Counterparty    string   `json:"counterparty"`
	Balance         float64  `json:"balance"`
	Fee             float64  `json:"fee"`
	Date            string   `json:"date"` // ISO calendar date, YYYY-MM-DD
	Time            string   `json:"time"` // 12-hour clock, e.g. "2:30 PM"
	AccountRef      string   `json:"account_ref,omitempty"`
	OutstandingLoan float64  `json:"outstanding_loan,omitempty"`
	Raw             string   `json:"raw"`
}

// Hash returns a stable digest used for duplicate detection when the same
// SMS dump is scanned more than once.
func (t *ParsedTransaction) Hash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Category,
		t.Amount,
		t.Counterparty,
		t.Date,
		t.Time)
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// Transaction is a parsed record as persisted in storage.
type Transaction struct {
	ParsedTransaction

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// SavingsTarget is a savings goal over a calendar period.
type SavingsTarget struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	StartDate string    `json:"start_date"` // YYYY-MM-DD
	EndDate   string    `json:"end_date"`   // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
