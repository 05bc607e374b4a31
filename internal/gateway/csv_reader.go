package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"barbacoa-pos/internal/domain"

	"github.com/shopspring/decimal"
)

// CSVExpenseReader reads expense batches for bulk import.
type CSVExpenseReader struct{}

// NewCSVExpenseReader creates a new reader instance.
func NewCSVExpenseReader() *CSVExpenseReader {
	return &CSVExpenseReader{}
}

// ReadExpenses parses a CSV with header concepto,categoria,monto[,metodo_pago[,nota]].
// Rows are returned unvalidated; amounts that are not numbers fail the read.
func (r *CSVExpenseReader) ReadExpenses(ctx context.Context, path string) ([]domain.ExpenseRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open expense file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var expenses []domain.ExpenseRecord
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d of %s: expected at least 3 fields, got %d", line, path, len(record))
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("could not parse amount '%s' on line %d: %w", record[2], line, err)
		}

		expense := domain.ExpenseRecord{
			Concept:  strings.TrimSpace(record[0]),
			Category: strings.TrimSpace(record[1]),
			Amount:   decimal.NewNullDecimal(amount),
		}
		if len(record) > 3 {
			expense.PaymentMethod = strings.TrimSpace(record[3])
		}
		if len(record) > 4 {
			if note := strings.TrimSpace(record[4]); note != "" {
				expense.Note = &note
			}
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}
