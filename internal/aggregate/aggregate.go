// Package aggregate turns fetched sale, item and tip rows into the totals
// shown by the reports and the cash closing. Every function is pure: rows in,
// fresh values out.
//
// Missing amounts count as zero and rows with unusable timestamps are skipped,
// so a bad row never fails a whole report. Rounding happens once, on output.
package aggregate

import (
	"sort"
	"strings"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/money"
	"barbacoa-pos/internal/timestamp"

	"github.com/shopspring/decimal"
)

// HoursPerDay is the fixed length of SalesByHour.
const HoursPerDay = 24

// SummarizeByMethod buckets sale totals by payment method. Rows with an empty
// or unknown method only count toward Total.
func SummarizeByMethod(rows []domain.SaleRecord) domain.MethodSummary {
	var cash, card, transfer, total decimal.Decimal
	for _, r := range rows {
		amount := money.OrZero(r.Total)
		total = total.Add(amount)

		method, ok := domain.ParsePaymentMethod(r.PaymentMethod)
		if !ok {
			continue
		}
		switch method {
		case domain.PaymentMethodCash:
			cash = cash.Add(amount)
		case domain.PaymentMethodCard:
			card = card.Add(amount)
		case domain.PaymentMethodTransfer:
			transfer = transfer.Add(amount)
		}
	}

	return domain.MethodSummary{
		Cash:     money.Round2(cash),
		Card:     money.Round2(card),
		Transfer: money.Round2(transfer),
		Total:    money.Round2(total),
	}
}

// TopProducts groups items by product name, ordered by subtotal descending and
// then name ascending. A limit <= 0 returns every product.
func TopProducts(items []domain.OrderItem, limit int) []domain.ProductSales {
	byName := make(map[string]*domain.ProductSales)
	for _, it := range items {
		name := labelOrUnknown(it.Name)
		p, ok := byName[name]
		if !ok {
			p = &domain.ProductSales{Product: name}
			byName[name] = p
		}
		p.TotalQuantity += it.Quantity
		p.TotalSubtotal = p.TotalSubtotal.Add(money.OrZero(it.Subtotal))
	}

	result := make([]domain.ProductSales, 0, len(byName))
	for _, p := range byName {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].TotalSubtotal.Cmp(result[j].TotalSubtotal); c != 0 {
			return c > 0
		}
		return result[i].Product < result[j].Product
	})

	result = truncate(result, limit)
	for i := range result {
		result[i].TotalSubtotal = money.Round2(result[i].TotalSubtotal)
	}
	return result
}

// SalesByHour returns exactly 24 buckets, hour 0 through 23, using the hour of
// each timestamp in its own offset.
func SalesByHour(rows []domain.SaleRecord) []domain.HourlySales {
	hours := make([]domain.HourlySales, HoursPerDay)
	for h := range hours {
		hours[h].Hour = h
	}

	for _, r := range rows {
		t, err := timestamp.Parse(r.CreatedAt)
		if err != nil {
			continue
		}
		h := &hours[t.Hour()]
		h.Total = h.Total.Add(money.OrZero(r.Total))
		h.Count++
	}

	for i := range hours {
		hours[i].Total = money.Round2(hours[i].Total)
	}
	return hours
}

// SalesByDay totals sales per calendar date, ascending. Dates outside
// [start, end] are dropped; an empty bound is open.
func SalesByDay(rows []domain.SaleRecord, start, end string) []domain.DailySales {
	byDate := make(map[string]decimal.Decimal)
	for _, r := range rows {
		key, ok := timestamp.ExtractDateKey(r.CreatedAt)
		if !ok {
			continue
		}
		if (start != "" && key < start) || (end != "" && key > end) {
			continue
		}
		byDate[key] = byDate[key].Add(money.OrZero(r.Total))
	}

	result := make([]domain.DailySales, 0, len(byDate))
	for date, total := range byDate {
		result = append(result, domain.DailySales{Date: date, Total: money.Round2(total)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// SalesByWaiter totals sales per waiter, ordered like TopProducts.
func SalesByWaiter(rows []domain.SaleRecord, limit int) []domain.WaiterSales {
	byWaiter := make(map[string]*domain.WaiterSales)
	for _, r := range rows {
		name := labelOrUnknown(r.Waiter)
		w, ok := byWaiter[name]
		if !ok {
			w = &domain.WaiterSales{Waiter: name}
			byWaiter[name] = w
		}
		w.Total = w.Total.Add(money.OrZero(r.Total))
		w.Count++
	}

	result := make([]domain.WaiterSales, 0, len(byWaiter))
	for _, w := range byWaiter {
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Waiter < result[j].Waiter
	})

	result = truncate(result, limit)
	for i := range result {
		result[i].Total = money.Round2(result[i].Total)
	}
	return result
}

// TipsByWaiter totals tips per waiter. Tips are keyed by waiter id when known
// and labelled with the snapshot name when there is one.
func TipsByWaiter(rows []domain.TipRecord) []domain.WaiterTips {
	byKey := make(map[string]*domain.WaiterTips)
	order := make([]string, 0)
	for _, r := range rows {
		var id, name string
		if r.WaiterID.Valid {
			id = r.WaiterID.UUID.String()
		}
		if r.WaiterName != nil {
			name = strings.TrimSpace(*r.WaiterName)
		}

		key := firstNonEmpty(id, name, domain.UnknownLabel)
		w, ok := byKey[key]
		if !ok {
			w = &domain.WaiterTips{Waiter: firstNonEmpty(name, id, domain.UnknownLabel)}
			byKey[key] = w
			order = append(order, key)
		}
		w.Total = w.Total.Add(money.OrZero(r.Amount))
		w.Count++
	}

	result := make([]domain.WaiterTips, 0, len(order))
	for _, key := range order {
		w := *byKey[key]
		w.Total = money.Round2(w.Total)
		result = append(result, w)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Waiter < result[j].Waiter
	})
	return result
}

// TotalExpenses sums expense amounts, rounded.
func TotalExpenses(rows []domain.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(money.OrZero(r.Amount))
	}
	return money.Round2(total)
}

// TotalTips sums tip amounts, rounded.
func TotalTips(rows []domain.TipRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(money.OrZero(r.Amount))
	}
	return money.Round2(total)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func labelOrUnknown(name string) string {
	if strings.TrimSpace(name) == "" {
		return domain.UnknownLabel
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
