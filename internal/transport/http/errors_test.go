package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdomain "github.com/light-bringer/order-management-service/internal/app/order/domain"
	productdomain "github.com/light-bringer/order-management-service/internal/app/product/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"product not found", productdomain.ErrProductNotFound, http.StatusNotFound},
		{"order not found", orderdomain.ErrOrderNotFound, http.StatusNotFound},
		{"empty product name", productdomain.ErrEmptyName, http.StatusBadRequest},
		{"missing price", productdomain.ErrMissingPrice, http.StatusBadRequest},
		{"negative price", productdomain.ErrInvalidPrice, http.StatusBadRequest},
		{"missing order number", orderdomain.ErrMissingOrderNumber, http.StatusBadRequest},
		{"duplicate order number", orderdomain.ErrDuplicateOrderNumber, http.StatusBadRequest},
		{"invalid status", orderdomain.ErrInvalidStatus, http.StatusBadRequest},
		{"completed order", orderdomain.ErrOrderCompleted, http.StatusBadRequest},
		{"invalid quantity", orderdomain.ErrInvalidQuantity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestMapDomainError_UniqueIndexCommitFailure(t *testing.T) {
	// A duplicate order number committed concurrently surfaces as the
	// unique-index violation instead of the pre-commit check.
	commitErr := fmt.Errorf("failed to commit transaction: %w",
		status.Error(codes.AlreadyExists, "Unique index violation on idx_orders_order_number"))

	gotStatus, message := mapDomainError(commitErr)
	assert.Equal(t, http.StatusBadRequest, gotStatus)
	assert.Equal(t, "order number is already in use", message)
}

func TestMapDomainError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), orderdomain.ErrDuplicateOrderNumber)

	status, _ := mapDomainError(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMapDomainError_DoesNotLeakInternals(t *testing.T) {
	_, message := mapDomainError(errors.New("spanner: session pool exhausted"))
	assert.Equal(t, "internal server error", message)
}
