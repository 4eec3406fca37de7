package checkout_sale

import "errors"

var (
	// ErrEmptyCart is returned when the sale has no items
	ErrEmptyCart = errors.New("checkout_sale: cart is empty")

	// ErrItemNotFound is returned when a product or service in the cart does not exist or is inactive
	ErrItemNotFound = errors.New("checkout_sale: item not found")

	// ErrInsufficientStock is returned when a product has fewer units than requested
	ErrInsufficientStock = errors.New("checkout_sale: insufficient stock")

	// ErrInsufficientPayment is returned when cash paid is less than the total
	ErrInsufficientPayment = errors.New("checkout_sale: amount paid is less than total")

	// ErrCustomerNotFound is returned when the sale references an unknown customer
	ErrCustomerNotFound = errors.New("checkout_sale: customer not found")

	ErrInvalidInput = errors.New("checkout_sale: invalid input data")
	ErrInternal     = errors.New("checkout_sale: internal error")
)
