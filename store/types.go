package store

import (
	"time"
)

// Email is a customer contact address.
type Email string

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Address is a postal address. Customers may not have one.
type Address struct {
	Street string `json:"street" steps:"Trim,NotEmpty"`
	City   string `json:"city" steps:"NotEmpty"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64    `json:"id"`
	Email    Email    `json:"email" steps:"ValidEmail"`
	FullName string   `json:"full_name" steps:"Trim,NotEmpty"`
	Nickname *string  `json:"nickname" steps:"NotNull,Trim;strict=Trim"`
	Age      *int     `json:"age" steps:"Positive"`
	Address  *Address `json:"address" steps:"NotNull,Complete"`
	note     string   `steps:"Trim"`
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	Status     OrderStatus `json:"status" steps:"KnownStatus"`
	TotalCents int64       `json:"total_cents" steps:"Positive"`
	Amount     string      `json:"amount" steps:"Positive,ParseNumber"`
	Items      []OrderItem `json:"items" steps:"NotEmpty"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" steps:"Positive"`
	UnitPrice int64  `json:"unit_price"`
}
