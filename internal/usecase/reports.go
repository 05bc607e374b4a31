package usecase

import (
	"context"
	"fmt"
	"time"

	"barbacoa-pos/internal/aggregate"
	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/timestamp"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// ReportOptions sets the truncation of ranked reports. Zero means no limit.
type ReportOptions struct {
	TopProducts int
	TopWaiters  int
}

// ReportUseCase builds the sales and tips reports.
type ReportUseCase struct {
	sales SalesRepository
	tips  TipRepository
	opts  ReportOptions
}

// NewReportUseCase creates a new instance of the usecase.
func NewReportUseCase(sales SalesRepository, tips TipRepository, opts ReportOptions) *ReportUseCase {
	return &ReportUseCase{sales: sales, tips: tips, opts: opts}
}

// SalesReport returns the method summary, top products, daily totals and
// waiter ranking for every day from start to end.
func (uc *ReportUseCase) SalesReport(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	sales, err := uc.fetchSales(ctx, start, end)
	if err != nil {
		return nil, err
	}

	items, err := uc.fetchItems(ctx, sales)
	if err != nil {
		return nil, err
	}

	startKey, endKey := start.Format(time.DateOnly), end.Format(time.DateOnly)
	logSkipped(sales)

	return &domain.SalesReport{
		Start:       startKey,
		End:         endKey,
		Methods:     aggregate.SummarizeByMethod(sales),
		TopProducts: aggregate.TopProducts(items, uc.opts.TopProducts),
		Daily:       aggregate.SalesByDay(sales, startKey, endKey),
		Waiters:     aggregate.SalesByWaiter(sales, uc.opts.TopWaiters),
	}, nil
}

// MethodSummary returns the sales of the range bucketed by payment method.
func (uc *ReportUseCase) MethodSummary(ctx context.Context, start, end time.Time) (domain.MethodSummary, error) {
	sales, err := uc.fetchSales(ctx, start, end)
	if err != nil {
		return domain.MethodSummary{}, err
	}
	return aggregate.SummarizeByMethod(sales), nil
}

// TopProducts ranks the products sold in the range. A limit <= 0 returns all.
func (uc *ReportUseCase) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]domain.ProductSales, error) {
	sales, err := uc.fetchSales(ctx, start, end)
	if err != nil {
		return nil, err
	}
	items, err := uc.fetchItems(ctx, sales)
	if err != nil {
		return nil, err
	}
	return aggregate.TopProducts(items, limit), nil
}

// SalesByDay returns the daily totals of the range.
func (uc *ReportUseCase) SalesByDay(ctx context.Context, start, end time.Time) ([]domain.DailySales, error) {
	sales, err := uc.fetchSales(ctx, start, end)
	if err != nil {
		return nil, err
	}
	logSkipped(sales)
	return aggregate.SalesByDay(sales, start.Format(time.DateOnly), end.Format(time.DateOnly)), nil
}

// SalesByHour returns the 24 hourly buckets of one day.
func (uc *ReportUseCase) SalesByHour(ctx context.Context, date time.Time) ([]domain.HourlySales, error) {
	sales, err := uc.fetchSales(ctx, date, date)
	if err != nil {
		return nil, err
	}
	logSkipped(sales)
	return aggregate.SalesByHour(sales), nil
}

// MonthlyTips totals the tips of a calendar month per waiter.
func (uc *ReportUseCase) MonthlyTips(ctx context.Context, year, month int) ([]domain.WaiterTips, error) {
	from, to, err := timestamp.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	tips, err := uc.tips.FetchTipsInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tips: %w", err)
	}
	return aggregate.TipsByWaiter(tips), nil
}

func (uc *ReportUseCase) fetchSales(ctx context.Context, start, end time.Time) ([]domain.SaleRecord, error) {
	from, to, err := timestamp.Range(start, end)
	if err != nil {
		return nil, err
	}

	sales, err := uc.sales.FetchSalesInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sales: %w", err)
	}
	return sales, nil
}

func (uc *ReportUseCase) fetchItems(ctx context.Context, sales []domain.SaleRecord) ([]domain.OrderItem, error) {
	if len(sales) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}

	items, err := uc.sales.FetchOrderItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order items: %w", err)
	}
	return items, nil
}

func logSkipped(sales []domain.SaleRecord) {
	skipped := 0
	for _, s := range sales {
		if _, err := timestamp.Parse(s.CreatedAt); err != nil {
			skipped++
		}
	}
	if skipped > 0 {
		log.Debugf("[Report] %d of %d sales have an unparseable timestamp", skipped, len(sales))
	}
}
