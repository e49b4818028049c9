package service

import "errors"

var (
	// ErrInvalidInput is wrapped with a description of the offending field.
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound     = errors.New("user not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrNotOwner means the cart item belongs to someone else.
	ErrNotOwner = errors.New("not the owner")
)
