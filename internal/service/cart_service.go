package service

import (
	"strings"

	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartAddInput 加购入参
type CartAddInput struct {
	SessionID string `json:"session_id"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartItemView 购物车条目视图
type CartItemView struct {
	ProductID    uint         `json:"product_id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand"`
	Price        models.Money `json:"price"`
	Image        string       `json:"image"`
	DeliveryTime int          `json:"delivery_time"`
	Quantity     int          `json:"quantity"`
	LineTotal    models.Money `json:"line_total"`
}

// CartDetail 购物车聚合视图
type CartDetail struct {
	SessionID string         `json:"session_id"`
	Items     []CartItemView `json:"items"`
	Total     models.Money   `json:"total"`
	ItemCount int            `json:"item_count"`
}

// AddItem 加购，同商品合并数量
func (s *CartService) AddItem(input CartAddInput) (*CartDetail, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	// 加购不校验库存，允许超卖（库存只影响前台售罄展示）

	existing, err := s.cartRepo.GetBySessionAndProduct(sessionID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(sessionID, input.ProductID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			SessionID:    sessionID,
			ProductID:    input.ProductID,
			Quantity:     quantity,
			Name:         product.Name,
			Brand:        product.Brand,
			Price:        product.Price,
			Image:        product.Image,
			DeliveryTime: product.DeliveryTime,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	}

	logger.Infow("cart_item_added",
		"session_id", sessionID,
		"product_id", input.ProductID,
		"quantity", quantity,
	)
	return s.GetCart(sessionID)
}

// UpdateQuantity 覆写条目数量，小于等于 0 视为移除
func (s *CartService) UpdateQuantity(sessionID string, productID uint, quantity int) (*CartDetail, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if quantity <= 0 {
		return s.RemoveItem(sessionID, productID)
	}

	existing, err := s.cartRepo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.GetCart(sessionID)
	}
	if err := s.cartRepo.UpdateQuantity(sessionID, productID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(sessionID)
}

// RemoveItem 移除条目，条目不存在时不报错
func (s *CartService) RemoveItem(sessionID string, productID uint) (*CartDetail, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if err := s.cartRepo.DeleteBySessionAndProduct(sessionID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(sessionID)
}

// ClearCart 清空会话购物车
func (s *CartService) ClearCart(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return s.cartRepo.ClearBySession(sessionID)
}

// GetCart 获取购物车聚合视图，价格优先取商品现价，商品下架时回退到加购快照
func (s *CartService) GetCart(sessionID string) (*CartDetail, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products := make(map[uint]models.Product)
	if len(productIDs) > 0 {
		list, err := s.productRepo.ListByIDs(productIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			products[p.ID] = p
		}
	}

	detail := &CartDetail{
		SessionID: sessionID,
		Items:     make([]CartItemView, 0, len(items)),
	}
	total := decimal.Zero
	for _, item := range items {
		view := CartItemView{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Brand:        item.Brand,
			Price:        item.Price,
			Image:        item.Image,
			DeliveryTime: item.DeliveryTime,
			Quantity:     item.Quantity,
		}
		if p, ok := products[item.ProductID]; ok {
			view.Name = p.Name
			view.Brand = p.Brand
			view.Price = p.Price
			view.Image = p.Image
			view.DeliveryTime = p.DeliveryTime
		}
		view.LineTotal = models.NewMoneyFromDecimal(view.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		detail.Items = append(detail.Items, view)
		detail.ItemCount += item.Quantity
		total = total.Add(view.LineTotal.Decimal)
	}
	detail.Total = models.NewMoneyFromDecimal(total)
	return detail, nil
}
