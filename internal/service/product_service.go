package service

import (
	"strings"

	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	configSvc   *ConfigService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, configSvc *ConfigService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		configSvc:   configSvc,
	}
}

// ProductCreateInput 商品创建入参
type ProductCreateInput struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"original_price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	DeliveryTime  int      `json:"delivery_time"`
	Stock         int      `json:"stock"`
	Discount      int      `json:"discount"`
	Badges        []string `json:"badges"`
}

// ProductUpdateInput 商品更新入参，nil 字段保持不变
type ProductUpdateInput struct {
	Name          *string  `json:"name"`
	Brand         *string  `json:"brand"`
	Price         *string  `json:"price"`
	OriginalPrice *string  `json:"original_price"`
	Category      *string  `json:"category"`
	Image         *string  `json:"image"`
	Images        []string `json:"images"`
	DeliveryTime  *int     `json:"delivery_time"`
	Stock         *int     `json:"stock"`
	Discount      *int     `json:"discount"`
	Badges        []string `json:"badges"`
}

// StockTier 计算库存档位：0 为 out_of_stock，1..阈值 为 low_stock，其余 in_stock
func StockTier(stock int) string {
	switch {
	case stock <= 0:
		return constants.StockTierOut
	case stock <= constants.LowStockThreshold:
		return constants.StockTierLow
	default:
		return constants.StockTierIn
	}
}

// ProductView 商品展示视图，附带库存档位
type ProductView struct {
	models.Product
	StockTier string `json:"stock_tier"`
}

// NewProductView 组装商品视图
func NewProductView(p models.Product) ProductView {
	return ProductView{Product: p, StockTier: StockTier(p.Stock)}
}

// List 分页查询商品
func (s *ProductService) List(filter repository.ProductListFilter) ([]ProductView, int64, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views, total, nil
}

// Get 获取单个商品
func (s *ProductService) Get(id uint) (*ProductView, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	view := NewProductView(*product)
	return &view, nil
}

// Categories 获取商品分类，受 allowed_categories 配置约束
func (s *ProductService) Categories() ([]string, error) {
	categories, err := s.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	allowed, err := s.configSvc.AllowedCategories()
	if err != nil {
		return nil, err
	}
	if len(allowed) == 0 {
		return categories, nil
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		allowedSet[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	filtered := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := allowedSet[strings.ToLower(c)]; ok {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductCreateInput) (*ProductView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidProductInput
	}
	price, err := models.NewMoneyFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidProductInput
	}
	if input.Stock < 0 || input.Discount < 0 || input.DeliveryTime < 0 {
		return nil, ErrInvalidProductInput
	}

	product := &models.Product{
		Name:         name,
		Brand:        strings.TrimSpace(input.Brand),
		Price:        price,
		Category:     strings.TrimSpace(input.Category),
		Image:        strings.TrimSpace(input.Image),
		Images:       models.StringArray(input.Images),
		DeliveryTime: input.DeliveryTime,
		Stock:        input.Stock,
		Discount:     input.Discount,
		Badges:       models.StringArray(input.Badges),
	}
	if raw := strings.TrimSpace(input.OriginalPrice); raw != "" {
		original, err := models.NewMoneyFromString(raw)
		if err != nil || original.IsNegative() {
			return nil, ErrInvalidProductInput
		}
		product.OriginalPrice = &original
	}
	product.SyncInStock()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	view := NewProductView(*product)
	return &view, nil
}

// Update 更新商品，只覆写提供的字段
func (s *ProductService) Update(id uint, input ProductUpdateInput) (*ProductView, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidProductInput
		}
		product.Name = name
	}
	if input.Brand != nil {
		product.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Price != nil {
		price, err := models.NewMoneyFromString(*input.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidProductInput
		}
		product.Price = price
	}
	if input.OriginalPrice != nil {
		raw := strings.TrimSpace(*input.OriginalPrice)
		if raw == "" {
			product.OriginalPrice = nil
		} else {
			original, err := models.NewMoneyFromString(raw)
			if err != nil || original.IsNegative() {
				return nil, ErrInvalidProductInput
			}
			product.OriginalPrice = &original
		}
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.Images != nil {
		product.Images = models.StringArray(input.Images)
	}
	if input.DeliveryTime != nil {
		if *input.DeliveryTime < 0 {
			return nil, ErrInvalidProductInput
		}
		product.DeliveryTime = *input.DeliveryTime
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrInvalidProductInput
		}
		product.Stock = *input.Stock
	}
	if input.Discount != nil {
		if *input.Discount < 0 {
			return nil, ErrInvalidProductInput
		}
		product.Discount = *input.Discount
	}
	if input.Badges != nil {
		product.Badges = models.StringArray(input.Badges)
	}
	product.SyncInStock()

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	view := NewProductView(*product)
	return &view, nil
}

// UpdateStock 覆写商品库存并同步 in_stock
func (s *ProductService) UpdateStock(id uint, stock int) (*ProductView, error) {
	if stock < 0 {
		return nil, ErrInvalidProductInput
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.productRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	product.SyncInStock()
	view := NewProductView(*product)
	return &view, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}
