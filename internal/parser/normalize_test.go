package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12,345.50", 12345.50},
		{"1,000", 1000},
		{"500.00", 500},
		{"0.00", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.in), "parseAmount(%q)", tt.in)
	}
}

func TestCleanCounterparty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  john   doe ", "JOHN DOE"},
		{".MAMA NJERI SHOP.", "MAMA NJERI SHOP"},
		{"Naivas Ltd", "NAIVAS LTD"},
		{"", "Unknown"},
		{" . ", "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanCounterparty(tt.in), "cleanCounterparty(%q)", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want string
	}{
		{"1/6/25", "2025-06-01"},
		{"15/6/25", "2025-06-15"},
		{"1/6/2025", "2025-06-01"},
		{"31/12/99", "2099-12-31"},
		{"", "2025-03-10"},
		{"1/6", "2025-03-10"},
		{"32/6/25", "2025-03-10"},
		{"1/13/25", "2025-03-10"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseDate(tt.in, fallback), "parseDate(%q)", tt.in)
	}
}

func TestParseClock(t *testing.T) {
	fallback := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "2:30 PM", parseClock("2:30 pm", fallback))
	assert.Equal(t, "11:05 AM", parseClock(" 11:05 AM ", fallback))
	assert.Equal(t, "2:05 PM", parseClock("", fallback))
}

func TestScanBalance(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want float64
	}{
		{
			name: "standard closing statement",
			msg:  "sent. New M-PESA balance is Ksh1,300.00. Transaction cost, Ksh23.00.",
			want: 1300,
		},
		{
			name: "inquiry phrasing",
			msg:  "Your M-PESA balance is Ksh1,950.00 as at 1/6/25.",
			want: 1950,
		},
		{
			name: "generic account balance",
			msg:  "your new account balance is Ksh900.00.",
			want: 900,
		},
		{
			name: "no balance stated",
			msg:  "Confirmed. Fuliza M-PESA amount is Ksh 300.00.",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanBalance(tt.msg))
		})
	}
}

func TestScanFee(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want float64
	}{
		{
			name: "transaction cost phrasing",
			msg:  "New M-PESA balance is Ksh1,300.00. Transaction cost, Ksh23.00.",
			want: 23,
		},
		{
			name: "zero cost",
			msg:  "Transaction cost, Ksh0.00.",
			want: 0,
		},
		{
			name: "no fee stated",
			msg:  "Confirmed. You have received Ksh1,000.00 from JANE.",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanFee(tt.msg))
		})
	}
}
