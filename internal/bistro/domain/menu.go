package domain

// Menu categories used by the storefront.
const (
	CategorySalad   = "salad"
	CategoryPizza   = "pizza"
	CategorySoup    = "soup"
	CategoryDessert = "dessert"
	CategoryDrinks  = "drinks"
	CategoryOffered = "offered"
	CategoryPopular = "popular"
)

type MenuItem struct {
	ID       string
	Name     string
	Recipe   string
	Image    string
	Category string
	Price    float64
}
