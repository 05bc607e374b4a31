package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/usecase"
	mock_usecase "barbacoa-pos/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReportUseCase_SalesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 5, 11, 23, 59, 59, 999999000, time.UTC)

	sales := daySales()
	sales = append(sales, domain.SaleRecord{
		ID: uuid.New(), Waiter: "Luis", Total: amount("80.00"), PaymentMethod: "TRANSFER", CreatedAt: "2024-05-11T09:00:00+00:00",
	})
	items := []domain.OrderItem{
		{OrderID: sales[0].ID, Name: "Taco", Quantity: 10, Subtotal: amount("300.00")},
		{OrderID: sales[1].ID, Name: "Consomé", Quantity: 4, Subtotal: amount("320.00")},
		{OrderID: sales[2].ID, Name: "Taco", Quantity: 2, Subtotal: amount("60.00")},
	}

	salesRepo := mock_usecase.NewMockSalesRepository(ctrl)
	tipRepo := mock_usecase.NewMockTipRepository(ctrl)
	salesRepo.EXPECT().FetchSalesInRange(gomock.Any(), start, wantTo).Return(sales, nil)
	salesRepo.EXPECT().FetchOrderItems(gomock.Any(), gomock.Len(4)).Return(items, nil)

	uc := usecase.NewReportUseCase(salesRepo, tipRepo, usecase.ReportOptions{TopProducts: 1, TopWaiters: 8})
	got, err := uc.SalesReport(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Equal(t, "2024-05-10", got.Start)
	assert.Equal(t, "2024-05-11", got.End)
	assertDecimal(t, "1000.00", got.Methods.Cash)
	assertDecimal(t, "80.00", got.Methods.Transfer)
	assertDecimal(t, "1530.00", got.Methods.Total)

	assert.Len(t, got.TopProducts, 1)
	assert.Equal(t, "Taco", got.TopProducts[0].Product)
	assert.Equal(t, 12, got.TopProducts[0].TotalQuantity)
	assertDecimal(t, "360.00", got.TopProducts[0].TotalSubtotal)

	assert.Len(t, got.Daily, 2)
	assert.Equal(t, "2024-05-10", got.Daily[0].Date)
	assertDecimal(t, "1450.00", got.Daily[0].Total)
	assertDecimal(t, "80.00", got.Daily[1].Total)

	assert.Len(t, got.Waiters, 2)
	assert.Equal(t, "Ana", got.Waiters[0].Waiter)
	assertDecimal(t, "1050.00", got.Waiters[0].Total)
}

func TestReportUseCase_SalesReport_NoSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesRepo := mock_usecase.NewMockSalesRepository(ctrl)
	tipRepo := mock_usecase.NewMockTipRepository(ctrl)
	salesRepo.EXPECT().FetchSalesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	uc := usecase.NewReportUseCase(salesRepo, tipRepo, usecase.ReportOptions{})
	got, err := uc.SalesReport(context.Background(), day, day)

	assert.NoError(t, err)
	assert.True(t, got.Methods.Total.IsZero())
	assert.Empty(t, got.TopProducts)
	assert.Empty(t, got.Daily)
	assert.Empty(t, got.Waiters)
}

func TestReportUseCase_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	repoErr := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(s *mock_usecase.MockSalesRepository)
		run     func(uc *usecase.ReportUseCase) error
		wantErr error
	}{
		{
			name: "end before start",
			run: func(uc *usecase.ReportUseCase) error {
				_, err := uc.SalesReport(context.Background(), day, day.AddDate(0, 0, -1))
				return err
			},
			wantErr: domain.ErrInvalidRange,
		},
		{
			name: "sales fetch fails",
			setup: func(s *mock_usecase.MockSalesRepository) {
				s.EXPECT().FetchSalesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, repoErr)
			},
			run: func(uc *usecase.ReportUseCase) error {
				_, err := uc.MethodSummary(context.Background(), day, day)
				return err
			},
			wantErr: repoErr,
		},
		{
			name: "items fetch fails",
			setup: func(s *mock_usecase.MockSalesRepository) {
				s.EXPECT().FetchSalesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(daySales(), nil)
				s.EXPECT().FetchOrderItems(gomock.Any(), gomock.Any()).Return(nil, repoErr)
			},
			run: func(uc *usecase.ReportUseCase) error {
				_, err := uc.TopProducts(context.Background(), day, day, 5)
				return err
			},
			wantErr: repoErr,
		},
		{
			name: "invalid month",
			run: func(uc *usecase.ReportUseCase) error {
				_, err := uc.MonthlyTips(context.Background(), 2024, 13)
				return err
			},
			wantErr: domain.ErrInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salesRepo := mock_usecase.NewMockSalesRepository(ctrl)
			tipRepo := mock_usecase.NewMockTipRepository(ctrl)
			if tt.setup != nil {
				tt.setup(salesRepo)
			}

			uc := usecase.NewReportUseCase(salesRepo, tipRepo, usecase.ReportOptions{})
			err := tt.run(uc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReportUseCase_SalesByHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	sales := append(daySales(),
		domain.SaleRecord{ID: uuid.New(), Total: amount("99.00"), CreatedAt: "not a date"},
		domain.SaleRecord{ID: uuid.New(), Total: amount("20.00"), CreatedAt: "2024-05-10 13:45:00-06 00"},
	)

	salesRepo := mock_usecase.NewMockSalesRepository(ctrl)
	salesRepo.EXPECT().FetchSalesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sales, nil)

	uc := usecase.NewReportUseCase(salesRepo, mock_usecase.NewMockTipRepository(ctrl), usecase.ReportOptions{})
	got, err := uc.SalesByHour(context.Background(), day)

	assert.NoError(t, err)
	assert.Len(t, got, 24)
	assert.Equal(t, 2, got[13].Count)
	assertDecimal(t, "620.00", got[13].Total)
	assert.Equal(t, 1, got[14].Count)
	assert.Equal(t, 1, got[15].Count)
}

func TestReportUseCase_MonthlyTips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anaID := uuid.New()
	ana := "Ana"
	tips := []domain.TipRecord{
		{Amount: amount("30.00"), WaiterID: uuid.NullUUID{UUID: anaID, Valid: true}, WaiterName: &ana},
		{Amount: amount("20.00"), WaiterID: uuid.NullUUID{UUID: anaID, Valid: true}},
		{Amount: amount("15.00")},
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 999999000, time.UTC)

	tipRepo := mock_usecase.NewMockTipRepository(ctrl)
	tipRepo.EXPECT().FetchTipsInRange(gomock.Any(), from, to).Return(tips, nil)

	uc := usecase.NewReportUseCase(mock_usecase.NewMockSalesRepository(ctrl), tipRepo, usecase.ReportOptions{})
	got, err := uc.MonthlyTips(context.Background(), 2024, 2)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Waiter)
	assert.Equal(t, 2, got[0].Count)
	assertDecimal(t, "50.00", got[0].Total)
	assert.Equal(t, domain.UnknownLabel, got[1].Waiter)
}
