package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name          string         `gorm:"not null" json:"name"`                               // 商品名称
	Brand         string         `gorm:"not null" json:"brand"`                              // 品牌
	Price         Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 售价
	OriginalPrice *Money         `gorm:"type:decimal(10,2)" json:"original_price"`           // 划线价（可为空）
	Category      string         `gorm:"not null;index" json:"category"`                     // 分类（wellness/skincare/electronics 等）
	Image         string         `gorm:"type:varchar(500);not null" json:"image"`            // 主图
	Images        StringArray    `gorm:"type:json" json:"images"`                            // 图片数组
	DeliveryTime  int            `gorm:"not null" json:"delivery_time"`                      // 配送时长（分钟）
	Stock         int            `gorm:"not null;default:0" json:"stock"`                    // 库存数量
	Discount      int            `gorm:"default:0" json:"discount"`                          // 折扣百分比
	Badges        StringArray    `gorm:"type:json" json:"badges"`                            // 促销标签（NEW/BESTSELLER 等）
	InStock       bool           `gorm:"not null" json:"in_stock"`                           // 是否有货（由库存派生，写入前经 SyncInStock 刷新）
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// SyncInStock 按库存数量刷新 InStock 标记，保持 in_stock == (stock > 0) 不变式
func (p *Product) SyncInStock() {
	p.InStock = p.Stock > 0
}
