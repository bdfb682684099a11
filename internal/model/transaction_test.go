package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySign(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     float64
	}{
		{"sent is outgoing", CategorySent, -1},
		{"received is incoming", CategoryReceived, 1},
		{"withdrawal is outgoing", CategoryWithdrawal, -1},
		{"deposit is incoming", CategoryDeposit, 1},
		{"buy goods is outgoing", CategoryBuyGoods, -1},
		{"pay bill is outgoing", CategoryPayBill, -1},
		{"airtime is outgoing", CategoryAirtime, -1},
		{"savings out is outgoing", CategorySavingsOut, -1},
		{"savings in is incoming", CategorySavingsIn, 1},
		{"loan disbursement is incoming", CategoryLoanDisbursement, 1},
		{"loan repayment is outgoing", CategoryLoanRepayment, -1},
		{"balance inquiry moves nothing", CategoryBalanceInquiry, 0},
		{"fuliza charge moves nothing", CategoryFulizaCharge, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Sign())
		})
	}
}

func TestApplySign(t *testing.T) {
	// The source text never carries a sign, so even a negative magnitude
	// must come out with the category's direction.
	assert.Equal(t, -500.0, CategorySent.ApplySign(500))
	assert.Equal(t, -500.0, CategorySent.ApplySign(-500))
	assert.Equal(t, 1000.0, CategoryReceived.ApplySign(1000))
	assert.Equal(t, 0.0, CategoryBalanceInquiry.ApplySign(1950))
	assert.Equal(t, 0.0, CategoryFulizaCharge.ApplySign(25))
}

func TestHashIsStable(t *testing.T) {
	txn := ParsedTransaction{
		Category:     CategorySent,
		Amount:       -500,
		Counterparty: "JOHN DOE",
		Date:         "2025-06-01",
		Time:         "2:30 PM",
	}
	other := txn

	assert.Equal(t, txn.Hash(), other.Hash())

	other.Amount = -501
	assert.NotEqual(t, txn.Hash(), other.Hash())
}
