package bistrosdk

import "time"

// TokenRequest asks the server to issue a session cookie for Email.
type TokenRequest struct {
	Email string `json:"email"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// CreateUserResponse reports the new user's id, or a nil id and a message
// when the email was already registered.
type CreateUserResponse struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type ModifiedResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type InsertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type MenuItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// MenuItemInput is the body for creating or replacing a menu item.
type MenuItemInput struct {
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type Review struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewInput struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CartItem struct {
	ID        string    `json:"_id"`
	MenuID    string    `json:"menuId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartItemInput struct {
	MenuID string  `json:"menuId"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentInput struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
}

type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemIds"`
	CreatedAt     time.Time `json:"date"`
}

type PaymentResponse struct {
	PaymentResult InsertedResponse `json:"paymentResult"`
	DeleteResult  DeletedResponse  `json:"deleteResult"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStats struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
