package domain

import "time"

// CartItem is a menu item a user has put in their cart. Email owns the row.
type CartItem struct {
	ID        string
	MenuID    string
	Email     string
	Name      string
	Image     string
	Price     float64
	CreatedAt time.Time
}
