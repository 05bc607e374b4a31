package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"
	mock_usecase "barbacoa-pos/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s %v", want, got, msgAndArgs)
}

func daySales() []domain.SaleRecord {
	return []domain.SaleRecord{
		{ID: uuid.New(), Waiter: "Ana", Total: amount("600.00"), PaymentMethod: "EFECTIVO", CreatedAt: "2024-05-10T13:10:00+00:00"},
		{ID: uuid.New(), Waiter: "Luis", Total: amount("400.00"), PaymentMethod: "EFECTIVO", CreatedAt: "2024-05-10T14:20:00+00:00"},
		{ID: uuid.New(), Waiter: "Ana", Total: amount("450.00"), PaymentMethod: "TARJETA", CreatedAt: "2024-05-10T15:00:00+00:00"},
	}
}

func dayExpenses() []domain.ExpenseRecord {
	return []domain.ExpenseRecord{
		{ID: uuid.New(), Concept: "Hielo", Category: "Insumos", Amount: amount("150.00"), PaymentMethod: "EFECTIVO"},
		{ID: uuid.New(), Concept: "Gas", Category: "Servicios", Amount: amount("50.00"), PaymentMethod: "EFECTIVO"},
	}
}

func dayTips() []domain.TipRecord {
	return []domain.TipRecord{
		{ID: uuid.New(), Amount: amount("50.00"), Source: domain.TipSourceManual, Date: "2024-05-10"},
	}
}

func TestCorteUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	start, end := timestamp.DayRange(date)
	repoErr := errors.New("connection refused")

	tests := []struct {
		name        string
		date        time.Time
		existing    *domain.CashClosing
		salesErr    error
		closingErr  error
		wantErr     error
		wantTheo    string
		wantNet     string
		wantSkipAll bool
	}{
		{
			name:     "totals without an existing closing",
			date:     date,
			wantTheo: "750.00",
			wantNet:  "1250.00",
		},
		{
			name:     "reports the closing already saved",
			date:     date,
			existing: &domain.CashClosing{ID: uuid.New(), Date: "2024-05-10"},
			wantTheo: "750.00",
			wantNet:  "1250.00",
		},
		{
			name:        "missing date",
			wantErr:     domain.ErrMissingDate,
			wantSkipAll: true,
		},
		{
			name:     "sales repository error",
			date:     date,
			salesErr: repoErr,
			wantErr:  repoErr,
		},
		{
			name:       "closing repository error",
			date:       date,
			closingErr: repoErr,
			wantErr:    repoErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := mock_usecase.NewMockSalesRepository(ctrl)
			expenses := mock_usecase.NewMockExpenseRepository(ctrl)
			tips := mock_usecase.NewMockTipRepository(ctrl)
			closings := mock_usecase.NewMockClosingRepository(ctrl)

			if !tt.wantSkipAll {
				if tt.salesErr != nil {
					sales.EXPECT().FetchSalesInRange(gomock.Any(), start, end).Return(nil, tt.salesErr)
				} else {
					sales.EXPECT().FetchSalesInRange(gomock.Any(), start, end).Return(daySales(), nil)
					expenses.EXPECT().FetchExpensesInRange(gomock.Any(), start, end).Return(dayExpenses(), nil)
					tips.EXPECT().FetchTipsInRange(gomock.Any(), start, end).Return(dayTips(), nil)
					closings.EXPECT().FetchExistingClosing(gomock.Any(), tt.date).Return(tt.existing, tt.closingErr)
				}
			}

			uc := usecase.NewCorteUseCase(sales, expenses, tips, closings)
			got, err := uc.Preview(context.Background(), tt.date)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "2024-05-10", got.Date)
			assertDecimal(t, "1000.00", got.Sales.Cash)
			assertDecimal(t, "450.00", got.Sales.Card)
			assertDecimal(t, "1450.00", got.Sales.Total)
			assertDecimal(t, "200.00", got.TotalExpenses)
			assertDecimal(t, "50.00", got.TotalTips)
			assertDecimal(t, tt.wantNet, got.NetAmount)
			assertDecimal(t, tt.wantTheo, got.TheoreticalCash)
			assert.Equal(t, tt.existing, got.Existing)
		})
	}
}

func TestCorteUseCase_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	existingID := uuid.New()
	repoErr := errors.New("timeout")

	tests := []struct {
		name         string
		req          usecase.ClosingRequest
		existing     *domain.CashClosing
		upsertErr    error
		skipRepos    bool
		wantErr      error
		wantID       uuid.UUID
		wantVariance string
		wantNotes    *string
	}{
		{
			name:         "new closing with a shortfall",
			req:          usecase.ClosingRequest{Date: date, ReportedCash: dec("700"), Notes: "  faltante  "},
			wantVariance: "-50.00",
			wantNotes:    strPtr("faltante"),
		},
		{
			name:         "updates the closing of the same date",
			req:          usecase.ClosingRequest{Date: date, ReportedCash: dec("750")},
			existing:     &domain.CashClosing{ID: existingID, Date: "2024-05-10"},
			wantID:       existingID,
			wantVariance: "0",
		},
		{
			name:         "reported cash is rounded before the variance",
			req:          usecase.ClosingRequest{Date: date, ReportedCash: dec("750.005")},
			wantVariance: "0.01",
		},
		{
			name:      "negative reported cash",
			req:       usecase.ClosingRequest{Date: date, ReportedCash: dec("-1")},
			skipRepos: true,
			wantErr:   domain.ErrNegativeCash,
		},
		{
			name:      "missing date",
			req:       usecase.ClosingRequest{ReportedCash: dec("10")},
			skipRepos: true,
			wantErr:   domain.ErrMissingDate,
		},
		{
			name:      "upsert error is wrapped",
			req:       usecase.ClosingRequest{Date: date, ReportedCash: dec("700")},
			upsertErr: repoErr,
			wantErr:   repoErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := mock_usecase.NewMockSalesRepository(ctrl)
			expenses := mock_usecase.NewMockExpenseRepository(ctrl)
			tips := mock_usecase.NewMockTipRepository(ctrl)
			closings := mock_usecase.NewMockClosingRepository(ctrl)

			if !tt.skipRepos {
				sales.EXPECT().FetchSalesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(daySales(), nil)
				expenses.EXPECT().FetchExpensesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(dayExpenses(), nil)
				tips.EXPECT().FetchTipsInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(dayTips(), nil)
				closings.EXPECT().FetchExistingClosing(gomock.Any(), date).Return(tt.existing, nil)
				closings.EXPECT().UpsertClosing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c domain.CashClosing) (*domain.CashClosing, error) {
						if tt.upsertErr != nil {
							return nil, tt.upsertErr
						}
						return &c, nil
					})
			}

			uc := usecase.NewCorteUseCase(sales, expenses, tips, closings)
			got, err := uc.Close(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "2024-05-10", got.Date)
			assert.Equal(t, tt.wantID, got.ID)
			assertDecimal(t, "1450.00", got.TotalSales)
			assertDecimal(t, "200.00", got.TotalExpenses)
			assertDecimal(t, "1250.00", got.NetAmount)
			assertDecimal(t, "750.00", got.TheoreticalCash)
			assertDecimal(t, tt.wantVariance, got.CashVariance)
			assert.Equal(t, tt.wantNotes, got.Notes)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
