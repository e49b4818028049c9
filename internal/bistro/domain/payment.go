package domain

import "time"

const PaymentStatusPending = "pending"

type Payment struct {
	ID            string
	Email         string
	Price         float64
	TransactionID string
	Status        string
	CartIDs       []string
	MenuItemIDs   []string
	CreatedAt     time.Time
}

// AdminStats summarises the whole shop.
type AdminStats struct {
	Users     int64
	MenuItems int64
	Orders    int64
	Revenue   float64
}

// CategoryStats is the number of items sold and the revenue they brought in
// for one menu category.
type CategoryStats struct {
	Category string
	Quantity int64
	Revenue  float64
}
