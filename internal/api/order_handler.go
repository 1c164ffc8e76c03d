package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// OrderCreateRequest is the payload for creating or fully replacing an
// order. The referenced user must exist at call time; that check happens
// in the handler against the user store, not here.
type OrderCreateRequest struct {
	UserID   int     `json:"user_id"  validate:"required,gt=0"`
	Item     string  `json:"item"     validate:"required,min=1,max=100"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Total    float64 `json:"total"    validate:"required,gt=0"`
}

// OrderUpdateRequest is the partial-update payload. user_id is not part
// of this schema, so the user reference is immutable via PATCH and is
// never re-validated there.
type OrderUpdateRequest struct {
	Item     shared.Optional[string]  `json:"item"`
	Quantity shared.Optional[int]     `json:"quantity"`
	Total    shared.Optional[float64] `json:"total"`
}

// Validate checks the constraints of every field the client actually sent.
func (req OrderUpdateRequest) Validate() error {
	var fields []shared.FieldError

	if req.Item.Set {
		if req.Item.Null {
			fields = append(fields, shared.FieldError{Field: "item", Message: "must not be null"})
		} else if n := utf8.RuneCountInString(req.Item.Value); n < 1 || n > 100 {
			fields = append(fields, shared.FieldError{Field: "item", Message: "must be between 1 and 100 characters"})
		}
	}
	if req.Quantity.Set {
		if req.Quantity.Null {
			fields = append(fields, shared.FieldError{Field: "quantity", Message: "must not be null"})
		} else if req.Quantity.Value <= 0 {
			fields = append(fields, shared.FieldError{Field: "quantity", Message: "must be greater than 0"})
		}
	}
	if req.Total.Set {
		if req.Total.Null {
			fields = append(fields, shared.FieldError{Field: "total", Message: "must not be null"})
		} else if req.Total.Value <= 0 {
			fields = append(fields, shared.FieldError{Field: "total", Message: "must be greater than 0"})
		}
	}

	if len(fields) > 0 {
		return &shared.FieldsError{Fields: fields}
	}
	return nil
}

// apply merges the sent fields onto the existing record.
func (req OrderUpdateRequest) apply(order *domain.Order) {
	if req.Item.Set {
		order.Item = req.Item.Value
	}
	if req.Quantity.Set {
		order.Quantity = req.Quantity.Value
	}
	if req.Total.Set {
		order.Total = req.Total.Value
	}
}

// OrderResponse represents the response data for an order.
type OrderResponse struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// OrderHandler handles order-related HTTP requests. It holds the user
// store as well for the cross-resource referential check.
type OrderHandler struct {
	orders store.OrderStore
	users  store.UserStore
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders store.OrderStore, users store.UserStore, log *slog.Logger) *OrderHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}

	return &OrderHandler{
		orders: orders,
		users:  users,
		logger: log.With(slog.String("component", "order_handler")),
	}
}

// List handles GET /orders requests, returning a paginated list of orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := shared.ParsePageParams(r)
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	orders, err := h.orders.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	page := shared.Page(orders, params)
	response := make([]OrderResponse, 0, len(page))
	for _, o := range page {
		response = append(response, orderToResponse(&o))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /orders/{orderID} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "orderID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// ListByUser handles GET /orders/user/{userID} requests. The user must
// exist; their order list may be empty. Because deleting a user never
// cascades, this endpoint 404s for a deleted user even while that user's
// orphaned orders remain reachable by order id.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathInt(r, "userID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if _, err := h.users.GetByID(r.Context(), userID); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", userID))
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(&o))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Create handles POST /orders requests. The referenced user is checked
// against the user store before anything is written, so a failed check
// never leaves a partially-written order behind.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req OrderCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if _, err := h.users.GetByID(r.Context(), req.UserID); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found: cannot create order", req.UserID))
		return
	}

	order := domain.Order{UserID: req.UserID, Item: req.Item, Quantity: req.Quantity, Total: req.Total}
	if err := h.orders.Create(r.Context(), &order); err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	log.Debug("order created",
		slog.Int("order_id", order.ID),
		slog.Int("user_id", order.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToResponse(&order))
}

// Replace handles PUT /orders/{orderID} requests. Both the order itself
// and the referenced user must exist at call time.
func (h *OrderHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "orderID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	var req OrderCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if _, err := h.orders.GetByID(r.Context(), id); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}
	if _, err := h.users.GetByID(r.Context(), req.UserID); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", req.UserID))
		return
	}

	order := domain.Order{ID: id, UserID: req.UserID, Item: req.Item, Quantity: req.Quantity, Total: req.Total}
	if err := h.orders.Replace(r.Context(), &order); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(&order))
}

// Patch handles PATCH /orders/{orderID} requests. The update schema has
// no user_id field, so the user reference is never re-checked here.
func (h *OrderHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "orderID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	var req OrderUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}

	req.apply(order)
	if err := h.orders.Replace(r.Context(), order); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// Delete handles DELETE /orders/{orderID} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathInt(r, "orderID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("Order %d not found", id))
		return
	}

	log.Debug("order deleted", slog.Int("order_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Order %d deleted successfully", id),
	})
}

// orderToResponse converts a domain.Order to an OrderResponse.
func orderToResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:       order.ID,
		UserID:   order.UserID,
		Item:     order.Item,
		Quantity: order.Quantity,
		Total:    order.Total,
	}
}
