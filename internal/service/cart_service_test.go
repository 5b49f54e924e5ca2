package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestEnv(t *testing.T, name string) (*CartService, repository.ProductRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:cart_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	return NewCartService(cartRepo, productRepo), productRepo
}

func createCartTestProduct(t *testing.T, repo repository.ProductRepository, name string, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:         name,
		Brand:        "TestBrand",
		Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Category:     "wellness",
		Image:        "https://example.com/p.jpg",
		DeliveryTime: 8,
		Stock:        stock,
	}
	product.SyncInStock()
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemMergesQuantityForSameProduct(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "merge")
	product := createCartTestProduct(t, productRepo, "Vitamin D3 Tablets", 299, 25)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected single merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "default_qty")
	product := createCartTestProduct(t, productRepo, "Immunity Tea Pack", 199, 30)

	cart, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	svc, _ := newCartTestEnv(t, "reject")

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: 9999, Quantity: 1}); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemAcceptsSoldOutProduct(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "sold_out")
	soldOut := createCartTestProduct(t, productRepo, "Sold Out Serum", 899, 0)

	cart, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: soldOut.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add sold-out product failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected sold-out product in cart, got %+v", cart.Items)
	}
}

func TestCartTotalsMatchLineSums(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "totals")
	vitamins := createCartTestProduct(t, productRepo, "Vitamin D3 Tablets", 299, 25)
	serum := createCartTestProduct(t, productRepo, "Vitamin C Serum", 899, 18)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: vitamins.ID, Quantity: 2}); err != nil {
		t.Fatalf("add vitamins failed: %v", err)
	}
	cart, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: serum.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add serum failed: %v", err)
	}

	if cart.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", cart.ItemCount)
	}
	if cart.Total.String() != "1497.00" {
		t.Fatalf("expected total 1497.00, got %s", cart.Total.String())
	}
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "qty_removal")
	product := createCartTestProduct(t, productRepo, "Sunscreen SPF 50", 599, 28)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.UpdateQuantity("s1", product.ID, 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %d lines", len(cart.Items))
	}

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	cart, err = svc.UpdateQuantity("s1", product.ID, -5)
	if err != nil {
		t.Fatalf("update to negative failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after negative quantity, got %d lines", len(cart.Items))
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "remove")
	product := createCartTestProduct(t, productRepo, "Type-C Fast Cable", 399, 45)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.RemoveItem("s1", product.ID); err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	cart, err := svc.RemoveItem("s1", product.ID)
	if err != nil {
		t.Fatalf("second remove should not fail: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestAddItemAfterRemoveAndClearReusesLine(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "readd")
	product := createCartTestProduct(t, productRepo, "Bluetooth Earbuds Pro", 2499, 20)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.RemoveItem("s1", product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected fresh line with quantity 2, got %+v", cart.Items)
	}

	if err := svc.ClearCart("s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, err = svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("re-add after clear failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected fresh line with quantity 3, got %+v", cart.Items)
	}
}

func TestClearCartOnlyTouchesOwnSession(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "clear")
	product := createCartTestProduct(t, productRepo, "Power Bank 10000mAh", 1299, 14)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to s1 failed: %v", err)
	}
	if _, err := svc.AddItem(CartAddInput{SessionID: "s2", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add to s2 failed: %v", err)
	}

	if err := svc.ClearCart("s1"); err != nil {
		t.Fatalf("clear s1 failed: %v", err)
	}
	cleared, err := svc.GetCart("s1")
	if err != nil {
		t.Fatalf("get s1 failed: %v", err)
	}
	if len(cleared.Items) != 0 {
		t.Fatalf("expected s1 empty, got %d lines", len(cleared.Items))
	}
	other, err := svc.GetCart("s2")
	if err != nil {
		t.Fatalf("get s2 failed: %v", err)
	}
	if len(other.Items) != 1 || other.Items[0].Quantity != 2 {
		t.Fatalf("expected s2 untouched, got %+v", other.Items)
	}
}

func TestGetCartFallsBackToSnapshotWhenProductRemoved(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "snapshot")
	product := createCartTestProduct(t, productRepo, "Retinol Night Cream", 1299, 12)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := productRepo.Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	cart, err := svc.GetCart("s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected snapshot line to survive, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Name != "Retinol Night Cream" || cart.Items[0].Price.String() != "1299.00" {
		t.Fatalf("unexpected snapshot line: %+v", cart.Items[0])
	}
}

func TestGetCartReflectsCurrentProductPrice(t *testing.T) {
	svc, productRepo := newCartTestEnv(t, "reprice")
	product := createCartTestProduct(t, productRepo, "Niacinamide Serum", 599, 16)

	if _, err := svc.AddItem(CartAddInput{SessionID: "s1", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	product.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(499))
	if err := productRepo.Update(product); err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	cart, err := svc.GetCart("s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.Items[0].Price.String() != "499.00" {
		t.Fatalf("expected live price 499.00, got %s", cart.Items[0].Price.String())
	}
	if cart.Total.String() != "998.00" {
		t.Fatalf("expected total 998.00, got %s", cart.Total.String())
	}
}
