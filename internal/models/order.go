package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// OrderItemSnapshot 下单时刻的购物车项快照；与在售商品解耦，
// 商品后续修改或下架不影响历史订单。
type OrderItemSnapshot struct {
	ProductID uint   `json:"product_id"` // 商品ID
	Name      string `json:"name"`       // 商品名称
	Brand     string `json:"brand"`      // 品牌
	Price     Money  `json:"price"`      // 单价
	Quantity  int    `json:"quantity"`   // 数量
	Image     string `json:"image"`      // 主图
}

// OrderItems 订单项快照数组，序列化为 JSON 存储
type OrderItems []OrderItemSnapshot

// Value 实现 driver.Valuer 接口
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// Scan 实现 sql.Scanner 接口
func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = OrderItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return nil
	}
}

// Order 订单表
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                // 主键
	SessionID         string         `gorm:"type:varchar(64);not null;index" json:"session_id"`   // 下单会话ID
	Items             OrderItems     `gorm:"type:json;not null" json:"items"`                     // 订单项快照
	Total             Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total"`  // 订单金额（按客户端提交值记录）
	PaymentMethod     string         `gorm:"type:varchar(20);not null" json:"payment_method"`     // 支付方式（upi/card/cod）
	DeliveryAddress   JSON           `gorm:"type:json;not null" json:"delivery_address"`          // 配送地址（姓名/地址/电话）
	Status            string         `gorm:"type:varchar(30);index;not null" json:"status"`       // 订单状态
	EstimatedDelivery int            `gorm:"not null;default:0" json:"estimated_delivery"`        // 预计送达（分钟）
	IdempotencyKey    string         `gorm:"type:varchar(64);index" json:"-"`                     // 幂等键（可为空）
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
