package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/light-bringer/order-management-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/order-management-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

// ProductsHandler serves the /products endpoints.
type ProductsHandler struct {
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	deleteProduct *delete_product.Interactor
	getProduct    *get_product.Query
	listProducts  *list_products.Query
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	deleteProduct *delete_product.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
) *ProductsHandler {
	return &ProductsHandler{
		createProduct: createProduct,
		updateProduct: updateProduct,
		deleteProduct: deleteProduct,
		getProduct:    getProduct,
		listProducts:  listProducts,
	}
}

type productPayload struct {
	Name      *string  `json:"name"`
	UnitPrice *float64 `json:"unitPrice"`
}

// List handles GET /products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// Get handles GET /products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.getProduct.Execute(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Create handles POST /products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := &create_product.Request{}
	if payload.Name != nil {
		req.Name = *payload.Name
	}
	if payload.UnitPrice != nil {
		price, err := money.FromFloat(*payload.UnitPrice)
		if err != nil {
			writeBadRequest(w, "invalid unit price")
			return
		}
		req.UnitPrice = price
	}

	productID, err := h.createProduct.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.getProduct.Execute(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /products/{id}. Absent fields are left untouched.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := &update_product.Request{
		ProductID: productID,
		Name:      payload.Name,
	}
	if payload.UnitPrice != nil {
		price, err := money.FromFloat(*payload.UnitPrice)
		if err != nil {
			writeBadRequest(w, "invalid unit price")
			return
		}
		req.UnitPrice = price
	}

	if err := h.updateProduct.Execute(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	product, err := h.getProduct.Execute(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /products/{id}. Order items referencing the product
// disappear with it.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.deleteProduct.Execute(r.Context(), productID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
