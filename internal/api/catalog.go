package api

import (
	"net/http"
	"strconv"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := boolParam(r, "active", true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := s.catalog.Products(r.Context(), activeOnly)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

type productRequest struct {
	Name     *string          `json:"nombre"`
	Category *string          `json:"categoria"`
	Price    *decimal.Decimal `json:"precio"`
	Active   *bool            `json:"activo"`
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := usecase.ProductInput{Active: true}
	if body.Name != nil {
		in.Name = *body.Name
	}
	if body.Category != nil {
		in.Category = *body.Category
	}
	if body.Price != nil {
		in.Price = *body.Price
	}
	if body.Active != nil {
		in.Active = *body.Active
	}

	product, err := s.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "product id must be an integer")
		return
	}

	var body productRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.catalog.UpdateProduct(r.Context(), id, domain.ProductChanges{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Active:   body.Active,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleListWaiters(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := boolParam(r, "active", true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	waiters, err := s.catalog.Waiters(r.Context(), activeOnly)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	if waiters == nil {
		waiters = []domain.Waiter{}
	}
	writeJSON(w, http.StatusOK, waiters)
}

type waiterRequest struct {
	Name   *string `json:"nombre"`
	Active *bool   `json:"activo"`
}

func (s *Server) handleCreateWaiter(w http.ResponseWriter, r *http.Request) {
	var body waiterRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var name string
	if body.Name != nil {
		name = *body.Name
	}
	waiter, err := s.catalog.CreateWaiter(r.Context(), name)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, waiter)
}

func (s *Server) handleUpdateWaiter(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "waiter id must be a UUID")
		return
	}

	var body waiterRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	waiter, err := s.catalog.UpdateWaiter(r.Context(), id, domain.WaiterChanges{Name: body.Name, Active: body.Active})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, waiter)
}
