package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderRepo(t *testing.T, name string) OrderRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_order_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db)
}

func testOrder(sessionID, status string, total int64) *models.Order {
	return &models.Order{
		SessionID: sessionID,
		Items: models.OrderItems{
			{ProductID: 1, Name: "Vitamin D3 Tablets", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(total)), Quantity: 1},
		},
		Total:             models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		PaymentMethod:     constants.PaymentMethodUPI,
		DeliveryAddress:   models.JSON{"name": "Priya", "address": "Bangalore", "phone": "9876543210"},
		Status:            status,
		EstimatedDelivery: 10,
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	repo := newOrderRepo(t, "items")

	order := testOrder("s1", constants.OrderStatusPending, 299)
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("order not found after create")
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Name != "Vitamin D3 Tablets" {
		t.Fatalf("items snapshot lost: %+v", loaded.Items)
	}
	if loaded.Total.String() != "299.00" {
		t.Fatalf("total want 299.00 got %s", loaded.Total.String())
	}
	if loaded.DeliveryAddress["name"] != "Priya" {
		t.Fatalf("address lost: %+v", loaded.DeliveryAddress)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := newOrderRepo(t, "missing")

	order, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("expected nil error for missing order, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
}

func TestListAdminStatusAndTimeFilters(t *testing.T) {
	repo := newOrderRepo(t, "filters")

	pending := testOrder("s1", constants.OrderStatusPending, 100)
	confirmed := testOrder("s1", constants.OrderStatusConfirmed, 200)
	other := testOrder("s2", constants.OrderStatusPending, 300)
	for _, o := range []*models.Order{pending, confirmed, other} {
		if err := repo.Create(o); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 pending orders, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, SessionID: "s1"})
	if err != nil {
		t.Fatalf("list by session failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 orders for s1, got %d", total)
	}

	future := time.Now().Add(time.Hour)
	orders, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, CreatedFrom: &future})
	if err != nil {
		t.Fatalf("list by created_from failed: %v", err)
	}
	if total != 0 || len(orders) != 0 {
		t.Fatalf("expected no orders created in the future, got %d", total)
	}

	past := time.Now().Add(-time.Hour)
	_, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, CreatedFrom: &past})
	if err != nil {
		t.Fatalf("list by past created_from failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected all 3 orders after past cutoff, got %d", total)
	}
}

func TestListAdminPagination(t *testing.T) {
	repo := newOrderRepo(t, "pagination")

	for i := 0; i < 5; i++ {
		if err := repo.Create(testOrder("s1", constants.OrderStatusPending, int64(100+i))); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("expected page of 2, got %d", len(orders))
	}
}

func TestUpdateStatusPersists(t *testing.T) {
	repo := newOrderRepo(t, "status")

	order := testOrder("s1", constants.OrderStatusPending, 100)
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.UpdateStatus(order.ID, constants.OrderStatusOutForDelivery); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Status != constants.OrderStatusOutForDelivery {
		t.Fatalf("status want out_for_delivery got %s", loaded.Status)
	}
}

func TestGetByIdempotencyKey(t *testing.T) {
	repo := newOrderRepo(t, "idem")

	order := testOrder("s1", constants.OrderStatusPending, 100)
	order.IdempotencyKey = "idem-abc"
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, err := repo.GetByIdempotencyKey("idem-abc")
	if err != nil {
		t.Fatalf("get by key failed: %v", err)
	}
	if loaded == nil || loaded.ID != order.ID {
		t.Fatalf("expected order %d, got %+v", order.ID, loaded)
	}

	missing, err := repo.GetByIdempotencyKey("idem-nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil,nil for missing key, got %+v, %v", missing, err)
	}
	blank, err := repo.GetByIdempotencyKey("  ")
	if err != nil || blank != nil {
		t.Fatalf("expected nil,nil for blank key, got %+v, %v", blank, err)
	}
}
