package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	orderrepo "github.com/kirana-labs/kirana-backend/internal/adapter/postgres/order"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

type orderRepo interface {
	List(ctx context.Context, f orderrepo.Filter) ([]*domain.Order, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepo interface {
	ListCustomers(ctx context.Context) ([]*domain.Profile, error)
	ListShopkeepers(ctx context.Context) ([]*domain.Profile, error)
	DeleteCustomer(ctx context.Context, phone string) error
	DeleteShopkeeper(ctx context.Context, phone string) error
}

// AdminHandler serves the operator REST surface: order inspection and
// lifecycle updates, plus customer and shopkeeper directory management.
type AdminHandler struct {
	orders   orderRepo
	profiles profileRepo
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(orders orderRepo, profiles profileRepo, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		orders:   orders,
		profiles: profiles,
		log:      logger.With("handler", "admin"),
	}
}

// Register mounts all admin routes on the mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/orders", h.ListOrders)
	mux.HandleFunc("GET /admin/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /admin/orders/{id}/status", h.UpdateOrderStatus)
	mux.HandleFunc("DELETE /admin/orders/{id}", h.DeleteOrder)
	mux.HandleFunc("GET /admin/customers", h.ListCustomers)
	mux.HandleFunc("DELETE /admin/customers/{phone}", h.DeleteCustomer)
	mux.HandleFunc("GET /admin/shopkeepers", h.ListShopkeepers)
	mux.HandleFunc("DELETE /admin/shopkeepers/{phone}", h.DeleteShopkeeper)
}

type itemResponse struct {
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	CategoryName   string `json:"category_name"`
	CategoryNumber int    `json:"category_number"`
}

type orderResponse struct {
	ID                 string         `json:"id"`
	CustomerPhone      string         `json:"customer_phone"`
	CustomerName       string         `json:"customer_name"`
	Text               string         `json:"text"`
	Items              []itemResponse `json:"items"`
	AudioRef           string         `json:"audio_ref,omitempty"`
	Status             string         `json:"status"`
	NotifiedRecipients []string       `json:"notified_recipients,omitempty"`
	TotalItems         int            `json:"total_items"`
	TotalCategories    int            `json:"total_categories"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type profileResponse struct {
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	ShopName    string    `json:"shop_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	TotalOrders int       `json:"total_orders,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListOrders returns recent orders, newest first.
// GET /admin/orders?customer=...&notified=...&status=...&limit=50&offset=0
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := orderrepo.Filter{
		CustomerPhone:     q.Get("customer"),
		NotifiedRecipient: q.Get("notified"),
		Status:            q.Get("status"),
	}
	if v := q.Get("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}

	if f.Status != "" && !domain.OrderStatus(f.Status).IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	orders, total, err := h.orders.List(r.Context(), f)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list orders", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := orderListResponse{
		Orders: make([]orderResponse, 0, len(orders)),
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetOrder returns a single order by ID.
// GET /admin/orders/{id}
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	o, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		h.respondRepoError(w, r, "get order", err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// UpdateOrderStatus transitions an order's lifecycle status.
// POST /admin/orders/{id}/status {"status": "accepted"}
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, status); err != nil {
		h.respondRepoError(w, r, "update order status", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id.String(), "status": status.String()})
}

// DeleteOrder removes an order.
// DELETE /admin/orders/{id}
func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		h.respondRepoError(w, r, "delete order", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCustomers returns all customer profiles.
// GET /admin/customers
func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.ListCustomers(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list customers", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponses(profiles))
}

// DeleteCustomer removes a customer profile.
// DELETE /admin/customers/{phone}
func (h *AdminHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	phone := r.PathValue("phone")

	if err := h.profiles.DeleteCustomer(r.Context(), phone); err != nil {
		h.respondRepoError(w, r, "delete customer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListShopkeepers returns all shopkeeper profiles.
// GET /admin/shopkeepers
func (h *AdminHandler) ListShopkeepers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.ListShopkeepers(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list shopkeepers", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponses(profiles))
}

// DeleteShopkeeper removes a shopkeeper profile.
// DELETE /admin/shopkeepers/{phone}
func (h *AdminHandler) DeleteShopkeeper(w http.ResponseWriter, r *http.Request) {
	phone := r.PathValue("phone")

	if err := h.profiles.DeleteShopkeeper(r.Context(), phone); err != nil {
		h.respondRepoError(w, r, "delete shopkeeper", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) respondRepoError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemResponse{
			Name:           it.Name,
			Quantity:       it.Quantity,
			CategoryName:   it.CategoryName,
			CategoryNumber: it.CategoryNumber,
		})
	}

	return orderResponse{
		ID:                 o.ID.String(),
		CustomerPhone:      o.CustomerPhone,
		CustomerName:       o.CustomerName,
		Text:               o.Text,
		Items:              items,
		AudioRef:           o.AudioRef,
		Status:             o.Status.String(),
		NotifiedRecipients: o.NotifiedRecipients,
		TotalItems:         o.TotalItems(),
		TotalCategories:    o.TotalCategories(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toProfileResponses(profiles []*domain.Profile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp := profileResponse{
			Phone:       p.Phone,
			Role:        p.Role.String(),
			Name:        p.Name,
			ShopName:    p.ShopName,
			Description: p.Description,
			Status:      p.Status.String(),
			TotalOrders: p.TotalOrders,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
		if p.Location != nil {
			resp.Location = p.Location.Label()
		}
		out = append(out, resp)
	}
	return out
}
