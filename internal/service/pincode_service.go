package service

import (
	"fmt"
	"strings"

	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/logger"
)

// PincodeService 配送范围服务
type PincodeService struct {
	configSvc *ConfigService
	delivery  config.DeliveryConfig
}

// NewPincodeService 创建配送范围服务
func NewPincodeService(configSvc *ConfigService, delivery config.DeliveryConfig) *PincodeService {
	return &PincodeService{
		configSvc: configSvc,
		delivery:  delivery,
	}
}

// PincodeCheckResult 配送范围检查结果；不可配送时预计送达为 null
type PincodeCheckResult struct {
	Pincode           string `json:"pincode"`
	Serviceable       bool   `json:"serviceable"`
	Message           string `json:"message"`
	EstimatedDelivery *int   `json:"estimated_delivery"`
}

// Check 判断邮编是否在配送范围内。
// 邮编格式不做强校验，任何不在白名单内的输入都按不可配送返回。
func (s *PincodeService) Check(raw string) (*PincodeCheckResult, error) {
	pincode := strings.TrimSpace(raw)
	if pincode == "" {
		return nil, ErrInvalidPincode
	}

	allowed, err := s.configSvc.AllowedPincodes()
	if err != nil {
		return nil, err
	}
	serviceable := false
	for _, p := range allowed {
		if strings.TrimSpace(p) == pincode {
			serviceable = true
			break
		}
	}

	result := &PincodeCheckResult{
		Pincode:     pincode,
		Serviceable: serviceable,
	}
	if serviceable {
		minutes := s.delivery.EstimatedMinutes
		result.EstimatedDelivery = &minutes
		result.Message = fmt.Sprintf("Great! We deliver to your area in %d minutes", minutes)
	} else {
		result.Message = "Sorry, we don't deliver to this pincode yet"
	}

	logger.Debugw("pincode_checked",
		"pincode", pincode,
		"serviceable", serviceable,
	)
	return result, nil
}
