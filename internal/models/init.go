package models

import (
	"errors"

	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/logger"

	"gorm.io/gorm"
)

// defaultAllowedCategories 默认可见分类
var defaultAllowedCategories = []string{"wellness", "skincare", "electronics"}

// defaultAllowedPincodes 默认可配送邮编（班加罗尔服务区）
var defaultAllowedPincodes = []string{
	"560001", "560002", "560025", "560029", "560030", "560034", "560035",
	"560036", "560037", "560038", "560042", "560043", "560047", "560048",
	"560049", "560050", "560051", "560052", "560053", "560055", "560056",
	"560061", "560062", "560066", "560068", "560070", "560071", "560072",
	"560075", "560076", "560078", "560079", "560080", "560083", "560084",
	"560085", "560087", "560092", "560093", "560094", "560095", "560096",
	"560097", "560098", "560100", "560102", "560103", "560104", "560107",
}

// InitDefaultConfig 初始化默认运营配置（已存在则跳过）
func InitDefaultConfig() error {
	defaults := []AppConfig{
		{
			Key:         constants.ConfigKeyAllowedCategories,
			ValueJSON:   stringListValue(defaultAllowedCategories),
			Description: "storefront visible categories",
		},
		{
			Key:         constants.ConfigKeyAllowedPincodes,
			ValueJSON:   stringListValue(defaultAllowedPincodes),
			Description: "serviceable delivery pincodes",
		},
	}

	for _, entry := range defaults {
		var existing AppConfig
		err := DB.Where("key = ?", entry.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := DB.Create(&entry).Error; err != nil {
			return err
		}
		logger.Infow("default_config_created", "key", entry.Key)
	}
	return nil
}

func stringListValue(items []string) JSON {
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, item)
	}
	return JSON{
		"kind":  constants.ConfigValueKindStringList,
		"value": values,
	}
}
