package models

import (
	"time"
)

// CartItem 购物车项；商品展示字段为下单时的冗余快照，
// 购物车渲染不依赖商品仍然在售。
// 购物车行是临时数据，移除即物理删除，保证 (session_id, product_id) 唯一键可复用。
type CartItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                                             // 主键
	SessionID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"` // 会话ID
	ProductID    uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`                  // 商品ID
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`                                               // 数量
	Name         string    `gorm:"not null" json:"name"`                                                             // 商品名称快照
	Brand        string    `gorm:"not null" json:"brand"`                                                            // 品牌快照
	Price        Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`                               // 单价快照
	Image        string    `gorm:"type:varchar(500)" json:"image"`                                                   // 主图快照
	DeliveryTime int       `gorm:"not null;default:0" json:"delivery_time"`                                          // 配送时长快照（分钟）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                                          // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`                                                          // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
