package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newProductTestEnv(t *testing.T, name string) *ProductService {
	t.Helper()

	dsn := fmt.Sprintf("file:product_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.AppConfig{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	configSvc := NewConfigService(repository.NewConfigRepository(db))
	return NewProductService(repository.NewProductRepository(db), configSvc)
}

func TestStockTierBoundaries(t *testing.T) {
	cases := []struct {
		stock int
		want  string
	}{
		{-1, constants.StockTierOut},
		{0, constants.StockTierOut},
		{1, constants.StockTierLow},
		{5, constants.StockTierLow},
		{6, constants.StockTierIn},
		{100, constants.StockTierIn},
	}
	for _, tc := range cases {
		if got := StockTier(tc.stock); got != tc.want {
			t.Fatalf("StockTier(%d) = %s, want %s", tc.stock, got, tc.want)
		}
	}
}

func TestCreateProductSyncsInStockFlag(t *testing.T) {
	svc := newProductTestEnv(t, "create")

	inStock, err := svc.Create(ProductCreateInput{
		Name:     "Vitamin D3 Tablets",
		Brand:    "HealthVit",
		Price:    "299",
		Category: "wellness",
		Stock:    25,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !inStock.InStock || inStock.StockTier != constants.StockTierIn {
		t.Fatalf("expected in-stock product, got in_stock=%v tier=%s", inStock.InStock, inStock.StockTier)
	}

	soldOut, err := svc.Create(ProductCreateInput{
		Name:     "Omega-3 Capsules",
		Brand:    "NutriMax",
		Price:    "599",
		Category: "wellness",
		Stock:    0,
	})
	if err != nil {
		t.Fatalf("create sold-out failed: %v", err)
	}
	if soldOut.InStock || soldOut.StockTier != constants.StockTierOut {
		t.Fatalf("expected sold-out product, got in_stock=%v tier=%s", soldOut.InStock, soldOut.StockTier)
	}

	// 回读落库行，确认 in_stock=false 真正持久化
	reloaded, err := svc.Get(soldOut.ID)
	if err != nil {
		t.Fatalf("reload sold-out product failed: %v", err)
	}
	if reloaded.InStock || reloaded.StockTier != constants.StockTierOut {
		t.Fatalf("expected persisted sold-out flag, got in_stock=%v tier=%s", reloaded.InStock, reloaded.StockTier)
	}
}

func TestCreateProductValidatesInput(t *testing.T) {
	svc := newProductTestEnv(t, "validate")

	if _, err := svc.Create(ProductCreateInput{Name: "", Price: "100"}); err != ErrInvalidProductInput {
		t.Fatalf("expected ErrInvalidProductInput for empty name, got %v", err)
	}
	if _, err := svc.Create(ProductCreateInput{Name: "X", Price: "not-a-price"}); err != ErrInvalidProductInput {
		t.Fatalf("expected ErrInvalidProductInput for bad price, got %v", err)
	}
	if _, err := svc.Create(ProductCreateInput{Name: "X", Price: "-10"}); err != ErrInvalidProductInput {
		t.Fatalf("expected ErrInvalidProductInput for negative price, got %v", err)
	}
	if _, err := svc.Create(ProductCreateInput{Name: "X", Price: "10", Stock: -1}); err != ErrInvalidProductInput {
		t.Fatalf("expected ErrInvalidProductInput for negative stock, got %v", err)
	}
}

func TestUpdateStockCrossesTierBoundaries(t *testing.T) {
	svc := newProductTestEnv(t, "stock")

	created, err := svc.Create(ProductCreateInput{
		Name:     "Whey Protein Powder",
		Brand:    "FitMax",
		Price:    "1299",
		Category: "wellness",
		Stock:    15,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	low, err := svc.UpdateStock(created.ID, 3)
	if err != nil {
		t.Fatalf("update stock to 3 failed: %v", err)
	}
	if !low.InStock || low.StockTier != constants.StockTierLow {
		t.Fatalf("expected low stock, got in_stock=%v tier=%s", low.InStock, low.StockTier)
	}

	out, err := svc.UpdateStock(created.ID, 0)
	if err != nil {
		t.Fatalf("update stock to 0 failed: %v", err)
	}
	if out.InStock || out.StockTier != constants.StockTierOut {
		t.Fatalf("expected out of stock, got in_stock=%v tier=%s", out.InStock, out.StockTier)
	}

	// 库存恢复后 in_stock 同步回 true
	restocked, err := svc.UpdateStock(created.ID, 10)
	if err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if !restocked.InStock || restocked.StockTier != constants.StockTierIn {
		t.Fatalf("expected restocked product, got in_stock=%v tier=%s", restocked.InStock, restocked.StockTier)
	}
}

func TestUpdateProductPartialFields(t *testing.T) {
	svc := newProductTestEnv(t, "update")

	created, err := svc.Create(ProductCreateInput{
		Name:     "Vitamin C Serum",
		Brand:    "GlowSkin",
		Price:    "899",
		Category: "skincare",
		Stock:    18,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := "799"
	updated, err := svc.Update(created.ID, ProductUpdateInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price.String() != "799.00" {
		t.Fatalf("expected price 799.00, got %s", updated.Price.String())
	}
	if updated.Name != "Vitamin C Serum" || updated.Stock != 18 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestListProductsFiltersByCategoryAndStock(t *testing.T) {
	svc := newProductTestEnv(t, "list")

	seed := []ProductCreateInput{
		{Name: "Vitamin D3 Tablets", Brand: "HealthVit", Price: "299", Category: "wellness", Stock: 25},
		{Name: "Vitamin C Serum", Brand: "GlowSkin", Price: "899", Category: "skincare", Stock: 18},
		{Name: "Sold Out Cream", Brand: "AquaGlow", Price: "699", Category: "skincare", Stock: 0},
	}
	for _, input := range seed {
		if _, err := svc.Create(input); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	skincare, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, Category: "skincare"})
	if err != nil {
		t.Fatalf("list skincare failed: %v", err)
	}
	if total != 2 || len(skincare) != 2 {
		t.Fatalf("expected 2 skincare products, got total=%d len=%d", total, len(skincare))
	}

	all, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, Category: "all"})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected category 'all' to skip filter, got total=%d len=%d", total, len(all))
	}

	available, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, InStockOnly: true})
	if err != nil {
		t.Fatalf("list in-stock failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 in-stock products, got %d", total)
	}
	for _, p := range available {
		if !p.InStock {
			t.Fatalf("in-stock filter returned sold-out product: %+v", p)
		}
	}
}

func TestDeleteProductThenGetReturnsNotFound(t *testing.T) {
	svc := newProductTestEnv(t, "delete")

	created, err := svc.Create(ProductCreateInput{
		Name:     "Bluetooth Earbuds Pro",
		Brand:    "SoundMax",
		Price:    "2999",
		Category: "electronics",
		Stock:    7,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(created.ID); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := svc.Delete(created.ID); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on double delete, got %v", err)
	}
}
