package errors

import (
	"net/http"

	"ferremas-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(http.StatusBadRequest, "CART_INVALID_QTY", "quantity must be a positive integer")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "CART_INVALID_PRICE", "unit price must be a finite non-negative number")
	ErrInvalidProduct  = apperror.New(http.StatusBadRequest, "CART_INVALID_PRODUCT", "invalid product id")
	ErrInvalidLine     = apperror.New(http.StatusBadRequest, "CART_INVALID_LINE", "product id and name are required")
	ErrLineNotFound    = apperror.New(http.StatusNotFound, "CART_LINE_NOT_FOUND", "product is not in the cart")
)
