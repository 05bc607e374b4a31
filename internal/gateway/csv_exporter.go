package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"barbacoa-pos/internal/domain"
)

// CSVReportExporter writes sales reports as sectioned CSV files.
type CSVReportExporter struct {
	dir   string
	now   func() time.Time
	write func(io.Writer, *domain.SalesReport) error
}

// NewCSVReportExporter creates an exporter writing into dir.
func NewCSVReportExporter(dir string) *CSVReportExporter {
	return &CSVReportExporter{dir: dir, now: time.Now, write: WriteSalesReport}
}

// Export writes report to dir/reporte_<stamp>.csv and returns the file path.
// No file is left behind when writing fails.
func (e *CSVReportExporter) Export(ctx context.Context, report *domain.SalesReport) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir %s: %w", e.dir, err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("reporte_%s.csv", e.now().Format("20060102_150405")))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", path, err)
	}

	if err := e.write(file, report); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// WriteSalesReport writes the sections of report to w.
func WriteSalesReport(w io.Writer, report *domain.SalesReport) error {
	cw := csv.NewWriter(w)
	m := report.Methods

	records := [][]string{
		{"Reporte de ventas"},
		{"Fecha inicio", report.Start},
		{"Fecha fin", report.End},
		{},
		{"Ventas por método"},
		{string(domain.PaymentMethodCash), m.Cash.StringFixed(2)},
		{string(domain.PaymentMethodCard), m.Card.StringFixed(2)},
		{string(domain.PaymentMethodTransfer), m.Transfer.StringFixed(2)},
		{"TOTAL", m.Total.StringFixed(2)},
		{},
		{"Top productos"},
		{"Producto", "Cantidad", "Total"},
	}
	for _, p := range report.TopProducts {
		records = append(records, []string{p.Product, strconv.Itoa(p.TotalQuantity), p.TotalSubtotal.StringFixed(2)})
	}

	records = append(records, []string{}, []string{"Ventas por día"}, []string{"Fecha", "Total"})
	for _, d := range report.Daily {
		records = append(records, []string{d.Date, d.Total.StringFixed(2)})
	}

	records = append(records, []string{}, []string{"Ventas por mesero"}, []string{"Mesero", "Comandas", "Total"})
	for _, s := range report.Waiters {
		records = append(records, []string{s.Waiter, strconv.Itoa(s.Count), s.Total.StringFixed(2)})
	}

	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
