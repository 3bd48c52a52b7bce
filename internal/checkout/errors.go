package checkout

import (
	"net/http"

	"ferremas-storefront/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(http.StatusBadRequest, "CHECKOUT_CART_EMPTY", "the cart is empty")

	ErrPaymentMethodRequired = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "select a payment method")
	ErrInvalidDeliveryMethod = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "select a delivery method")
	ErrShippingIncomplete    = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "full name, email, address, region and commune are required for home delivery")
	ErrBranchRequired        = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "select a branch for pickup")

	ErrUnexpectedResponse = apperror.New(http.StatusBadGateway, apperror.CodeUnexpectedResp, "unexpected server response")
	ErrOrderFailed        = apperror.New(http.StatusBadGateway, apperror.CodeBackendError, "could not create the order, please try again")
)
