package repository

import (
	"errors"
	"strings"

	"github.com/bellu-mart/internal/models"

	"gorm.io/gorm"
)

// ConfigRepository 应用配置数据访问接口
type ConfigRepository interface {
	GetByKey(key string) (*models.AppConfig, error)
	List() ([]models.AppConfig, error)
	Upsert(cfg *models.AppConfig) error
	WithTx(tx *gorm.DB) ConfigRepository
}

// GormConfigRepository GORM 实现
type GormConfigRepository struct {
	db *gorm.DB
}

// NewConfigRepository 创建配置仓库
func NewConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// WithTx 绑定事务
func (r *GormConfigRepository) WithTx(tx *gorm.DB) ConfigRepository {
	if tx == nil {
		return r
	}
	return &GormConfigRepository{db: tx}
}

// GetByKey 获取单个配置项，不存在返回 nil
func (r *GormConfigRepository) GetByKey(key string) (*models.AppConfig, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}
	var cfg models.AppConfig
	err := r.db.Where("key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// List 获取全部配置项
func (r *GormConfigRepository) List() ([]models.AppConfig, error) {
	var configs []models.AppConfig
	if err := r.db.Order("key ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// Upsert 写入配置项，存在则覆盖
func (r *GormConfigRepository) Upsert(cfg *models.AppConfig) error {
	var existing models.AppConfig
	err := r.db.Where("key = ?", cfg.Key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(cfg).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"value_json": cfg.ValueJSON,
	}
	if cfg.Description != "" {
		updates["description"] = cfg.Description
	}
	return r.db.Model(&models.AppConfig{}).Where("key = ?", cfg.Key).Updates(updates).Error
}
