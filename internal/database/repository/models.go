package repository

import "time"

// Order represents a confirmed checkout row.
type Order struct {
	ID        string
	Total     float64
	CreatedAt time.Time
	Lines     []OrderLine
}

// OrderLine represents one selected menu item within an order.
type OrderLine struct {
	ID          string
	OrderID     string
	Position    int
	MenuItemID  string
	Name        string
	Description string
	Price       float64
}
