package models

// AppConfig 运营配置表（键值对存储，值为带类型标签的 JSON）
type AppConfig struct {
	Key         string `gorm:"primarykey" json:"key"`                 // 配置键
	ValueJSON   JSON   `gorm:"type:json;not null" json:"value"`       // 配置值（{kind, value}）
	Description string `gorm:"type:varchar(255)" json:"description"`  // 说明
}

// TableName 指定表名
func (AppConfig) TableName() string {
	return "app_config"
}
