package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/light-bringer/order-management-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/order-management-service/internal/app/order/queries/list_orders"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/create_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/delete_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/update_order"
)

// OrdersHandler serves the /orders endpoints.
type OrdersHandler struct {
	createOrder *create_order.Interactor
	updateOrder *update_order.Interactor
	deleteOrder *delete_order.Interactor
	getOrder    *get_order.Query
	listOrders  *list_orders.Query
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(
	createOrder *create_order.Interactor,
	updateOrder *update_order.Interactor,
	deleteOrder *delete_order.Interactor,
	getOrder *get_order.Query,
	listOrders *list_orders.Query,
) *OrdersHandler {
	return &OrdersHandler{
		createOrder: createOrder,
		updateOrder: updateOrder,
		deleteOrder: deleteOrder,
		getOrder:    getOrder,
		listOrders:  listOrders,
	}
}

type orderItemPayload struct {
	ID       *string `json:"id"`
	Quantity *int64  `json:"quantity"`
}

type orderPayload struct {
	OrderNumber *string             `json:"orderNumber"`
	Status      *string             `json:"status"`
	Products    *[]orderItemPayload `json:"products"`
}

// List handles GET /orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listOrders.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.getOrder.Execute(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := &create_order.Request{}
	if payload.OrderNumber != nil {
		req.OrderNumber = *payload.OrderNumber
	}
	if payload.Status != nil {
		req.Status = *payload.Status
	}
	if payload.Products != nil {
		req.Items = toCreateItemInputs(*payload.Products)
	}

	orderID, err := h.createOrder.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.getOrder.Execute(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// Update handles PUT /orders/{id}. Absent fields are left untouched; a
// present products list replaces the order's items wholesale.
func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := &update_order.Request{
		OrderID:     orderID,
		OrderNumber: payload.OrderNumber,
		Status:      payload.Status,
	}
	if payload.Products != nil {
		req.ItemsSet = true
		req.Items = toUpdateItemInputs(*payload.Products)
	}

	if err := h.updateOrder.Execute(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.getOrder.Execute(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /orders/{id}.
func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	if err := h.deleteOrder.Execute(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Items without a product ID are dropped here; items with an unknown
// product ID are dropped later, during construction. Quantity defaults
// to one when absent.
func toCreateItemInputs(payloads []orderItemPayload) []create_order.ItemInput {
	inputs := make([]create_order.ItemInput, 0, len(payloads))
	for _, p := range payloads {
		if p.ID == nil {
			continue
		}
		quantity := int64(1)
		if p.Quantity != nil {
			quantity = *p.Quantity
		}
		inputs = append(inputs, create_order.ItemInput{ProductID: *p.ID, Quantity: quantity})
	}
	return inputs
}

func toUpdateItemInputs(payloads []orderItemPayload) []update_order.ItemInput {
	inputs := make([]update_order.ItemInput, 0, len(payloads))
	for _, p := range payloads {
		if p.ID == nil {
			continue
		}
		quantity := int64(1)
		if p.Quantity != nil {
			quantity = *p.Quantity
		}
		inputs = append(inputs, update_order.ItemInput{ProductID: *p.ID, Quantity: quantity})
	}
	return inputs
}
