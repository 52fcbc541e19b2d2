// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestBookOrderTotalPrice(t *testing.T) {
	price := 1800.00
	book := &Book{Title: "Sociology of Modern Society", Price: &price}
	order := &BookOrder{Quantity: 3}

	total := order.TotalPrice(book)
	if total == nil {
		t.Fatal("expected total price, got nil")
	}
	if *total != 5400.00 {
		t.Errorf("total: got %.2f, want 5400.00", *total)
	}
}

func TestBookOrderTotalPriceUnsetPrice(t *testing.T) {
	book := &Book{Title: "Unpriced"}
	order := &BookOrder{Quantity: 2}

	if total := order.TotalPrice(book); total != nil {
		t.Errorf("expected nil total for unpriced book, got %.2f", *total)
	}
	if total := order.TotalPrice(nil); total != nil {
		t.Error("expected nil total for nil book")
	}
}

func TestValidServiceOrderStatus(t *testing.T) {
	valid := []OrderStatus{OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled}
	for _, s := range valid {
		if !ValidServiceOrderStatus(s) {
			t.Errorf("expected %q to be valid for service orders", s)
		}
	}

	// Shipped belongs to book orders only.
	if ValidServiceOrderStatus(OrderStatusShipped) {
		t.Error("shipped must not be valid for service orders")
	}
	if ValidServiceOrderStatus("unknown") {
		t.Error("unknown status must not be valid")
	}
}

func TestValidBookOrderStatus(t *testing.T) {
	if !ValidBookOrderStatus(OrderStatusShipped) {
		t.Error("expected shipped to be valid for book orders")
	}
	if ValidBookOrderStatus("refunded") {
		t.Error("refunded must not be valid")
	}
}
