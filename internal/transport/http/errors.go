package http

import (
	"errors"
	"net/http"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	orderdomain "github.com/light-bringer/order-management-service/internal/app/order/domain"
	productdomain "github.com/light-bringer/order-management-service/internal/app/product/domain"
)

// mapDomainError converts domain errors to an HTTP status code and a
// client-facing message. Unknown errors collapse to 500 without leaking
// internals.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"

	case errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"

	case errors.Is(err, productdomain.ErrEmptyName):
		return http.StatusBadRequest, "product name cannot be empty"

	case errors.Is(err, productdomain.ErrMissingPrice):
		return http.StatusBadRequest, "product price is required"

	case errors.Is(err, productdomain.ErrInvalidPrice):
		return http.StatusBadRequest, "product price must not be negative"

	case errors.Is(err, productdomain.ErrPriceOverflow):
		return http.StatusBadRequest, "product price is out of range"

	case errors.Is(err, orderdomain.ErrMissingOrderNumber):
		return http.StatusBadRequest, "order number cannot be empty"

	case errors.Is(err, orderdomain.ErrDuplicateOrderNumber):
		return http.StatusBadRequest, "order number is already in use"

	// A concurrent duplicate can slip past the pre-commit uniqueness check
	// and surface as the unique-index commit failure instead.
	case spanner.ErrCode(err) == codes.AlreadyExists:
		return http.StatusBadRequest, "order number is already in use"

	case errors.Is(err, orderdomain.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid order status"

	case errors.Is(err, orderdomain.ErrOrderCompleted):
		return http.StatusBadRequest, "completed orders cannot be modified"

	case errors.Is(err, orderdomain.ErrInvalidQuantity):
		return http.StatusBadRequest, "item quantity must be at least 1"

	case errors.Is(err, orderdomain.ErrMissingItemPrice):
		return http.StatusBadRequest, "item price is required"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
