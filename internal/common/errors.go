// Package common defines shared constants, sentinel errors, and small
// presentation helpers used across marketcart components. Callers should
// use errors.Is to match the error values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")

	// Store-level errors.
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrOperationInProgress   = errors.New("operation already in progress")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrSellerAccountRequired = errors.New("seller account required")
)
