package cli

import (
	"bytes"
	"context"
	"testing"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/usecase"
	mock_usecase "barbacoa-pos/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Lvl
	}{
		{"debug", log.DEBUG},
		{"INFO", log.INFO},
		{"warn", log.WARN},
		{"error", log.ERROR},
		{"off", log.OFF},
		{"", log.INFO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logLevel(tt.in), tt.in)
	}
}

// stubApp wires the commands to usecases over mocks without expectations,
// so any repository call fails the test.
func stubApp(t *testing.T) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sales := mock_usecase.NewMockSalesRepository(ctrl)
	orders := mock_usecase.NewMockOrderRepository(ctrl)
	products := mock_usecase.NewMockProductRepository(ctrl)
	waiters := mock_usecase.NewMockWaiterRepository(ctrl)
	expenses := mock_usecase.NewMockExpenseRepository(ctrl)
	tips := mock_usecase.NewMockTipRepository(ctrl)
	closings := mock_usecase.NewMockClosingRepository(ctrl)

	openApp = func(context.Context) (*app, error) {
		return &app{
			corte:   usecase.NewCorteUseCase(sales, expenses, tips, closings),
			reports: usecase.NewReportUseCase(sales, tips, usecase.ReportOptions{TopProducts: 10, TopWaiters: 8}),
			ledger:  usecase.NewLedgerUseCase(orders, products, expenses, tips),
			catalog: usecase.NewCatalogUseCase(products, waiters),
		}, nil
	}
	t.Cleanup(func() { openApp = newApp })
}

func TestCommands_RejectInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantErr string
	}{
		{
			name:   "range end before start",
			args:   []string{"report", "sales", "--start", "2024-05-10", "--end", "2024-05-01"},
			wantIs: domain.ErrInvalidRange,
		},
		{
			name:    "malformed closing date",
			args:    []string{"corte", "close", "--date", "10/05/2024", "--cash", "100"},
			wantErr: "expected YYYY-MM-DD",
		},
		{
			name:   "negative counted cash",
			args:   []string{"corte", "close", "--date", "2024-05-10", "--cash", "-1"},
			wantIs: domain.ErrNegativeCash,
		},
		{
			name:    "non numeric cash",
			args:    []string{"corte", "close", "--date", "2024-05-10", "--cash", "mil"},
			wantErr: "invalid cash amount",
		},
		{
			name:   "month out of range",
			args:   []string{"tips", "monthly", "--year", "2024", "--month", "13"},
			wantIs: domain.ErrInvalidMonth,
		},
		{
			name:    "non numeric expense",
			args:    []string{"expense", "add", "--concept", "Hielo", "--category", "Insumos", "--amount", "cien"},
			wantErr: "invalid amount",
		},
		{
			name:    "invalid waiter id",
			args:    []string{"tips", "add", "--amount", "10", "--waiter-id", "ana"},
			wantErr: "invalid waiter id",
		},
		{
			name:    "malformed expense day",
			args:    []string{"expense", "list", "--date", "ayer"},
			wantErr: "expected YYYY-MM-DD",
		},
		{
			name:   "product without category",
			args:   []string{"product", "add", "--name", "Taco", "--price", "28.50"},
			wantIs: domain.ErrMissingField,
		},
		{
			name:   "negative product price",
			args:   []string{"product", "add", "--name", "Taco", "--category", "Comida", "--price", "-3"},
			wantIs: domain.ErrInvalidAmount,
		},
		{
			name:   "product update without changes",
			args:   []string{"product", "update", "--id", "3"},
			wantIs: domain.ErrNoChanges,
		},
		{
			name:    "product id not numeric",
			args:    []string{"product", "update", "--id", "tres", "--price", "10"},
			wantErr: "invalid product id",
		},
		{
			name:   "waiter without name",
			args:   []string{"waiter", "add"},
			wantIs: domain.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubApp(t)
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := Execute(context.Background())
			if !assert.Error(t, err) {
				return
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printJSON(&buf, map[string]int{"hora": 13})
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"hora\": 13\n}\n", buf.String())
}
