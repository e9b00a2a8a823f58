package order

import "time"

// Item is a frozen cart line. Title and image are copied in so the order
// still renders after the product changes upstream.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Customer holds the shipping/contact fields exactly as submitted.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
}

type Order struct {
	ID        string    `json:"orderId"`
	UserID    string    `json:"userId,omitempty"`
	Customer  Customer  `json:"customer"`
	Items     []Item    `json:"items"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
