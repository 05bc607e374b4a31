package aggregate

import (
	"testing"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.NullDecimal {
	return money.Null(decimal.RequireFromString(s))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sale(total, method, createdAt string) domain.SaleRecord {
	r := domain.SaleRecord{PaymentMethod: method, CreatedAt: createdAt}
	if total != "" {
		r.Total = amount(total)
	}
	return r
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s got %s %v", want, got, msgAndArgs)
}

func TestSummarizeByMethod(t *testing.T) {
	tests := []struct {
		name         string
		rows         []domain.SaleRecord
		wantCash     string
		wantCard     string
		wantTransfer string
		wantTotal    string
	}{
		{
			name:         "empty input",
			rows:         nil,
			wantCash:     "0",
			wantCard:     "0",
			wantTransfer: "0",
			wantTotal:    "0",
		},
		{
			name: "all known methods",
			rows: []domain.SaleRecord{
				sale("120.50", "EFECTIVO", ""),
				sale("80.25", "TARJETA", ""),
				sale("45.00", "TRANSFER", ""),
				sale("10.10", "EFECTIVO", ""),
			},
			wantCash:     "130.60",
			wantCard:     "80.25",
			wantTransfer: "45.00",
			wantTotal:    "255.85",
		},
		{
			name: "unknown and empty methods only count toward total",
			rows: []domain.SaleRecord{
				sale("100", "EFECTIVO", ""),
				sale("30", "", ""),
				sale("20", "CHEQUE", ""),
				sale("5", "efectivo", ""),
			},
			wantCash:     "100",
			wantCard:     "0",
			wantTransfer: "0",
			wantTotal:    "155",
		},
		{
			name: "missing total counts as zero",
			rows: []domain.SaleRecord{
				sale("", "EFECTIVO", ""),
				sale("15.75", "TARJETA", ""),
			},
			wantCash:     "0",
			wantCard:     "15.75",
			wantTransfer: "0",
			wantTotal:    "15.75",
		},
		{
			name: "half cents round once at the end",
			rows: []domain.SaleRecord{
				sale("0.005", "EFECTIVO", ""),
				sale("0.005", "EFECTIVO", ""),
			},
			wantCash:     "0.01",
			wantCard:     "0",
			wantTransfer: "0",
			wantTotal:    "0.01",
		},
		{
			name: "single half cent rounds away from zero",
			rows: []domain.SaleRecord{
				sale("0.005", "TARJETA", ""),
			},
			wantCash:     "0",
			wantCard:     "0.01",
			wantTransfer: "0",
			wantTotal:    "0.01",
		},
		{
			name: "float-unfriendly cents stay exact",
			rows: []domain.SaleRecord{
				sale("0.10", "TRANSFER", ""),
				sale("0.20", "TRANSFER", ""),
			},
			wantCash:     "0",
			wantCard:     "0",
			wantTransfer: "0.30",
			wantTotal:    "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeByMethod(tt.rows)
			assertDecimal(t, tt.wantCash, got.Cash, "cash")
			assertDecimal(t, tt.wantCard, got.Card, "card")
			assertDecimal(t, tt.wantTransfer, got.Transfer, "transfer")
			assertDecimal(t, tt.wantTotal, got.Total, "total")
		})
	}
}

func TestSummarizeByMethod_BucketsAddUpToTotal(t *testing.T) {
	methods := []string{"EFECTIVO", "TARJETA", "TRANSFER"}
	var rows []domain.SaleRecord
	sum := decimal.Zero
	for i := 0; i < 300; i++ {
		total := decimal.New(int64(i*137%10000+1), -2)
		sum = sum.Add(total)
		rows = append(rows, domain.SaleRecord{Total: money.Null(total), PaymentMethod: methods[i%3]})
	}

	got := SummarizeByMethod(rows)
	assert.True(t, got.Total.Equal(money.Round2(sum)))
	assert.True(t, got.Cash.Add(got.Card).Add(got.Transfer).Equal(got.Total))
}

func TestTopProducts(t *testing.T) {
	order := uuid.New()
	items := []domain.OrderItem{
		{OrderID: order, Name: "Taco de barbacoa", Quantity: 3, Subtotal: amount("75.00")},
		{OrderID: order, Name: "Consome", Quantity: 1, Subtotal: amount("40.00")},
		{OrderID: order, Name: "Taco de barbacoa", Quantity: 2, Subtotal: amount("50.00")},
		{OrderID: order, Name: "Agua de horchata", Quantity: 2, Subtotal: amount("60.00")},
		{OrderID: order, Name: "Refresco", Quantity: 1, Subtotal: amount("60.00")},
		{OrderID: order, Name: "", Quantity: 1, Subtotal: amount("12.345")},
		{OrderID: order, Name: "Tortillas", Quantity: 4},
	}

	t.Run("no limit", func(t *testing.T) {
		got := TopProducts(items, 0)
		require.Len(t, got, 6)

		names := make([]string, len(got))
		for i, p := range got {
			names[i] = p.Product
		}
		assert.Equal(t, []string{"Taco de barbacoa", "Agua de horchata", "Refresco", "Consome", domain.UnknownLabel, "Tortillas"}, names)

		assert.Equal(t, 5, got[0].TotalQuantity)
		assertDecimal(t, "125.00", got[0].TotalSubtotal)
		assertDecimal(t, "12.35", got[4].TotalSubtotal)
		assert.Equal(t, 4, got[5].TotalQuantity)
		assertDecimal(t, "0", got[5].TotalSubtotal)
	})

	t.Run("equal subtotals are ordered by name", func(t *testing.T) {
		got := TopProducts([]domain.OrderItem{
			{Name: "Zarzamora", Quantity: 1, Subtotal: amount("30")},
			{Name: "Arroz", Quantity: 1, Subtotal: amount("30")},
		}, 10)
		require.Len(t, got, 2)
		assert.Equal(t, "Arroz", got[0].Product)
		assert.Equal(t, "Zarzamora", got[1].Product)
	})

	t.Run("limit truncates", func(t *testing.T) {
		got := TopProducts(items, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "Taco de barbacoa", got[0].Product)
		assert.Equal(t, "Agua de horchata", got[1].Product)
	})

	t.Run("negative limit means no truncation", func(t *testing.T) {
		assert.Len(t, TopProducts(items, -1), 6)
	})

	t.Run("empty input", func(t *testing.T) {
		got := TopProducts(nil, 10)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSalesByHour(t *testing.T) {
	t.Run("two sales in the same hour", func(t *testing.T) {
		got := SalesByHour([]domain.SaleRecord{
			sale("100", "EFECTIVO", "2024-01-01T05:00:00Z"),
			sale("50", "EFECTIVO", "2024-01-01T05:30:00Z"),
		})

		require.Len(t, got, HoursPerDay)
		for h, bucket := range got {
			assert.Equal(t, h, bucket.Hour)
			if h == 5 {
				assertDecimal(t, "150.00", bucket.Total)
				assert.Equal(t, 2, bucket.Count)
				continue
			}
			assertDecimal(t, "0", bucket.Total, "hour %d", h)
			assert.Equal(t, 0, bucket.Count, "hour %d", h)
		}
	})

	t.Run("malformed and missing timestamps are skipped", func(t *testing.T) {
		got := SalesByHour([]domain.SaleRecord{
			sale("10", "TARJETA", ""),
			sale("20", "TARJETA", "not a date"),
			sale("30", "TARJETA", "2024-01-01T13:10:00+0 0:00"),
			sale("40", "TARJETA", "2024-01-01T23:59:59-0600"),
		})

		require.Len(t, got, HoursPerDay)
		assertDecimal(t, "30", got[13].Total)
		assert.Equal(t, 1, got[13].Count)
		assertDecimal(t, "40", got[23].Total)
		assert.Equal(t, 1, got[23].Count)

		count := 0
		for _, b := range got {
			count += b.Count
		}
		assert.Equal(t, 2, count)
	})

	t.Run("empty input still has 24 hours", func(t *testing.T) {
		got := SalesByHour(nil)
		require.Len(t, got, HoursPerDay)
		assert.Equal(t, 23, got[23].Hour)
	})
}

func TestSalesByDay(t *testing.T) {
	rows := []domain.SaleRecord{
		sale("100", "EFECTIVO", "2024-01-02T10:00:00+00:00"),
		sale("25.50", "TARJETA", "2024-01-01T22:00:00+0 0:00"),
		sale("74.50", "TARJETA", "2024-01-01 09:00:00+00"),
		sale("10", "EFECTIVO", ""),
		sale("10", "EFECTIVO", "garbage"),
		sale("", "EFECTIVO", "2024-01-03T08:00:00Z"),
		sale("999", "EFECTIVO", "2023-12-31T23:00:00Z"),
	}

	got := SalesByDay(rows, "2024-01-01", "2024-01-03")
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assertDecimal(t, "100.00", got[0].Total)
	assert.Equal(t, "2024-01-02", got[1].Date)
	assertDecimal(t, "100", got[1].Total)
	assert.Equal(t, "2024-01-03", got[2].Date)
	assertDecimal(t, "0", got[2].Total)

	t.Run("open bounds keep every date", func(t *testing.T) {
		got := SalesByDay(rows, "", "")
		require.Len(t, got, 4)
		assert.Equal(t, "2023-12-31", got[0].Date)
		assertDecimal(t, "999", got[0].Total)
		assert.Equal(t, "2024-01-03", got[3].Date)
	})
}

func TestSalesByWaiter(t *testing.T) {
	rows := []domain.SaleRecord{
		{Waiter: "Lupita", Total: amount("100")},
		{Waiter: "Beto", Total: amount("150")},
		{Waiter: "Lupita", Total: amount("50")},
		{Waiter: "", Total: amount("20")},
		{Waiter: "Ana", Total: amount("150")},
	}

	got := SalesByWaiter(rows, 0)
	require.Len(t, got, 4)
	assert.Equal(t, "Ana", got[0].Waiter)
	assert.Equal(t, "Beto", got[1].Waiter)
	assert.Equal(t, "Lupita", got[2].Waiter)
	assert.Equal(t, 2, got[2].Count)
	assertDecimal(t, "150", got[2].Total)
	assert.Equal(t, domain.UnknownLabel, got[3].Waiter)

	assert.Len(t, SalesByWaiter(rows, 2), 2)
}

func TestTipsByWaiter(t *testing.T) {
	lupitaID := uuid.New()
	lupita := "Lupita"
	beto := "Beto"
	blank := "  "

	rows := []domain.TipRecord{
		{Amount: amount("20"), WaiterID: uuid.NullUUID{UUID: lupitaID, Valid: true}, WaiterName: &lupita},
		{Amount: amount("15.50"), WaiterID: uuid.NullUUID{UUID: lupitaID, Valid: true}},
		{Amount: amount("40"), WaiterName: &beto},
		{Amount: amount("5"), WaiterName: &blank},
		{Amount: amount("3")},
		{WaiterName: &beto},
	}

	got := TipsByWaiter(rows)
	require.Len(t, got, 3)

	assert.Equal(t, "Beto", got[0].Waiter)
	assertDecimal(t, "40", got[0].Total)
	assert.Equal(t, 2, got[0].Count)

	assert.Equal(t, "Lupita", got[1].Waiter)
	assertDecimal(t, "35.50", got[1].Total)
	assert.Equal(t, 2, got[1].Count)

	assert.Equal(t, domain.UnknownLabel, got[2].Waiter)
	assertDecimal(t, "8", got[2].Total)
	assert.Equal(t, 2, got[2].Count)
}

func TestTotals(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		{Amount: amount("150.255")},
		{Amount: amount("49.75")},
		{},
	}
	assertDecimal(t, "200.01", TotalExpenses(expenses))
	assertDecimal(t, "0", TotalExpenses(nil))

	tips := []domain.TipRecord{
		{Amount: amount("30")},
		{Amount: amount("20")},
		{},
	}
	assertDecimal(t, "50", TotalTips(tips))
	assertDecimal(t, "0", TotalTips(nil))
}
