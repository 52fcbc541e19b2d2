// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the processing state of a service or book order.
// Book orders additionally pass through "shipped".
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped" // book orders only
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidServiceOrderStatus reports whether s is allowed for service orders.
func ValidServiceOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidBookOrderStatus reports whether s is allowed for book orders.
func ValidBookOrderStatus(s OrderStatus) bool {
	return s == OrderStatusShipped || ValidServiceOrderStatus(s)
}

// ServiceOrder is a public request for a service. Created by visitors
// through the order form; only the operator mutates status and notes.
// Deleting the referenced service cascades to its orders.
type ServiceOrder struct {
	ID            uuid.UUID   `json:"id"`
	ServiceID     uuid.UUID   `json:"service_id"`
	FullName      string      `json:"full_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Organization  string      `json:"organization"`
	Message       string      `json:"message"`
	PreferredDate *time.Time  `json:"preferred_date,omitempty"`
	Status        OrderStatus `json:"status"`
	AdminNotes    string      `json:"admin_notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// BookOrder is a public order for printed copies of a book.
type BookOrder struct {
	ID         uuid.UUID   `json:"id"`
	BookID     uuid.UUID   `json:"book_id"`
	FullName   string      `json:"full_name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"` // delivery address
	Quantity   int         `json:"quantity"`
	Message    string      `json:"message"`
	Status     OrderStatus `json:"status"`
	AdminNotes string      `json:"admin_notes"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// TotalPrice returns unit price × quantity, or nil when the book has no
// price set.
func (o *BookOrder) TotalPrice(book *Book) *float64 {
	if book == nil || book.Price == nil {
		return nil
	}
	total := *book.Price * float64(o.Quantity)
	return &total
}
