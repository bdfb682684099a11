package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangi/pesaflow/internal/model"
)

func TestWriteCSV(t *testing.T) {
	txns := []model.Transaction{
		{
			ID: "b",
			ParsedTransaction: model.ParsedTransaction{
				Category:     model.CategoryReceived,
				Amount:       1000,
				Counterparty: "JANE SMITH",
				Balance:      2300,
				Date:         "2025-06-04",
				Time:         "9:00 AM",
			},
		},
		{
			ID: "a",
			ParsedTransaction: model.ParsedTransaction{
				Category:     model.CategorySent,
				Amount:       -500,
				Counterparty: "JOHN DOE",
				Balance:      1300,
				Fee:          23,
				Date:         "2025-06-01",
				Time:         "2:30 PM",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txns))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "date", records[0][0])
	// Oldest row first regardless of input order.
	assert.Equal(t, "2025-06-01", records[1][0])
	assert.Equal(t, "sent", records[1][2])
	assert.Equal(t, "-500.00", records[1][4])
	assert.Equal(t, "2025-06-04", records[2][0])
	assert.Equal(t, "JANE SMITH", records[2][3])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}
