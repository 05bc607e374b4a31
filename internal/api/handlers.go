package api

import (
	"net/http"
	"strings"
	"time"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Server) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	start, err := dateParam(r, "start")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := dateParam(r, "end")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.reports.SalesReport(r.Context(), start, end)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHourly(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hours, err := s.reports.SalesByHour(r.Context(), date)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (s *Server) handleMonthlyTips(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tips, err := s.reports.MonthlyTips(r.Context(), year, month)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

func (s *Server) handlePreviewClosing(w http.ResponseWriter, r *http.Request) {
	date, err := timestamp.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := s.corte.Preview(r.Context(), date)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

type closingRequest struct {
	ReportedCash *decimal.Decimal `json:"efectivo_reportado"`
	Notes        string           `json:"notas"`
}

func (s *Server) handleSaveClosing(w http.ResponseWriter, r *http.Request) {
	date, err := timestamp.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body closingRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.ReportedCash == nil {
		writeError(w, http.StatusBadRequest, "efectivo_reportado is required")
		return
	}

	closing, err := s.corte.Close(r.Context(), usecase.ClosingRequest{
		Date:         date,
		ReportedCash: *body.ReportedCash,
		Notes:        body.Notes,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	closingsSaved.Inc()
	observeVariance(closing.CashVariance)
	writeJSON(w, http.StatusOK, closing)
}

type orderLine struct {
	ProductID int64 `json:"producto_id"`
	Quantity  int   `json:"cantidad"`
}

type orderRequest struct {
	Waiter   string           `json:"mesero"`
	Method   string           `json:"metodo_pago"`
	Items    []orderLine      `json:"items"`
	Received *decimal.Decimal `json:"recibido"`
	Tip      decimal.Decimal  `json:"propina"`
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body orderRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lines := make([]usecase.OrderLine, 0, len(body.Items))
	for _, it := range body.Items {
		lines = append(lines, usecase.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := s.ledger.PlaceOrder(r.Context(), usecase.OrderInput{
		Waiter:   body.Waiter,
		Method:   body.Method,
		Lines:    lines,
		Received: body.Received,
		Tip:      body.Tip,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	ledgerEntries.WithLabelValues("order").Inc()
	if order.Tip != nil {
		ledgerEntries.WithLabelValues("tip").Inc()
	}
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleDailyExpenses(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := s.ledger.DailyExpenses(r.Context(), date)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	if expenses == nil {
		expenses = []domain.ExpenseRecord{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

type expenseRequest struct {
	Concept  string          `json:"concepto"`
	Category string          `json:"categoria"`
	Amount   decimal.Decimal `json:"monto"`
	Note     string          `json:"nota"`
	Method   string          `json:"metodo_pago"`
}

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	var body expenseRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := s.ledger.RecordExpense(r.Context(), usecase.ExpenseInput{
		Concept:  body.Concept,
		Category: body.Category,
		Amount:   body.Amount,
		Note:     body.Note,
		Method:   body.Method,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	ledgerEntries.WithLabelValues("expense").Inc()
	writeJSON(w, http.StatusCreated, expense)
}

type tipRequest struct {
	Amount     decimal.Decimal `json:"monto"`
	WaiterID   uuid.NullUUID   `json:"mesero_id"`
	WaiterName string          `json:"mesero_nombre"`
	Source     string          `json:"fuente"`
	OrderID    uuid.NullUUID   `json:"comanda_id"`
	Date       string          `json:"fecha"`
}

func (s *Server) handleRecordTip(w http.ResponseWriter, r *http.Request) {
	var body tipRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var date time.Time
	if strings.TrimSpace(body.Date) != "" {
		d, err := timestamp.ParseDate(body.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		date = d
	}

	tip, err := s.ledger.RecordTip(r.Context(), usecase.TipInput{
		Amount:     body.Amount,
		WaiterID:   body.WaiterID,
		WaiterName: body.WaiterName,
		Source:     body.Source,
		OrderID:    body.OrderID,
		Date:       date,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	ledgerEntries.WithLabelValues("tip").Inc()
	writeJSON(w, http.StatusCreated, tip)
}
