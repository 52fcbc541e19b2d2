package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholarsite/internal/models"
)

func TestServiceOrderLifecycle(t *testing.T) {
	db := testDB(t)
	services := NewServiceStore(db)
	orders := NewServiceOrderStore(db)
	t.Cleanup(func() { cleanServices(t, db, "Test Orderable Service") })

	service, err := services.Create(&models.Service{Title: "Test Orderable Service", IsActive: true})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	order, err := orders.Create(&models.ServiceOrder{
		ServiceID: service.ID,
		FullName:  "Test Client",
		Email:     "client@example.com",
		Phone:     "+998901234567",
		Message:   "Need help with dissertation statistics",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Status != models.OrderStatusNew {
		t.Errorf("expected status new, got %q", order.Status)
	}

	if err := orders.UpdateStatus(order.ID, models.OrderStatusProcessing, "called the client"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	found, err := orders.FindByID(order.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Status != models.OrderStatusProcessing {
		t.Errorf("expected status processing, got %q", found.Status)
	}
	if found.AdminNotes != "called the client" {
		t.Errorf("expected admin notes persisted, got %q", found.AdminNotes)
	}
}

func TestServiceOrderRejectsShipped(t *testing.T) {
	// Status validation happens before any query, so no database needed.
	orders := NewServiceOrderStore(nil)
	err := orders.UpdateStatus(uuid.Nil, models.OrderStatusShipped, "")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for shipped service order, got %v", err)
	}

	bookOrders := NewBookOrderStore(nil)
	if err := bookOrders.UpdateStatus(uuid.Nil, "delivered", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for unknown book order status, got %v", err)
	}
}

func TestServiceOrderCascadeDelete(t *testing.T) {
	db := testDB(t)
	services := NewServiceStore(db)
	orders := NewServiceOrderStore(db)
	t.Cleanup(func() { cleanServices(t, db, "Test Doomed Service") })

	service, err := services.Create(&models.Service{Title: "Test Doomed Service", IsActive: true})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	order, err := orders.Create(&models.ServiceOrder{
		ServiceID: service.ID,
		FullName:  "Test Client",
		Email:     "client@example.com",
		Phone:     "+998901234567",
		Message:   "will be orphaned",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := services.Delete(service.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	found, err := orders.FindByID(order.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("order should be removed when its service is deleted")
	}
}

func TestBookOrderLifecycle(t *testing.T) {
	db := testDB(t)
	books := NewBookStore(db)
	orders := NewBookOrderStore(db)
	t.Cleanup(func() { cleanBooks(t, db, "test-orderable-book") })

	price := 1800.00
	book, err := books.Create(&models.Book{
		Title:           "Test Orderable Book",
		Slug:            "test-orderable-book",
		CoverKey:        "media/books/orderable-cover.jpg",
		PDFKey:          "media/books/orderable.pdf",
		PublicationYear: 2023,
		Price:           &price,
		IsAvailable:     true,
	})
	if err != nil {
		t.Fatalf("create book: %v", err)
	}

	order, err := orders.Create(&models.BookOrder{
		BookID:   book.ID,
		FullName: "Test Reader",
		Email:    "reader@example.com",
		Phone:    "+998901234567",
		Address:  "Tashkent, Navoi street 1",
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Status != models.OrderStatusNew {
		t.Errorf("expected status new, got %q", order.Status)
	}

	if total := order.TotalPrice(book); total == nil || *total != 5400.00 {
		t.Errorf("expected total 5400.00, got %v", total)
	}

	// Book orders may pass through shipped.
	if err := orders.UpdateStatus(order.ID, models.OrderStatusShipped, "sent by courier"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	found, err := orders.FindByID(order.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Status != models.OrderStatusShipped {
		t.Errorf("expected status shipped, got %q", found.Status)
	}
}
