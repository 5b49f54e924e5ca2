package service

import (
	"encoding/json"
	"strings"

	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"
)

// ConfigService 应用配置服务
type ConfigService struct {
	configRepo repository.ConfigRepository
}

// NewConfigService 创建配置服务
func NewConfigService(configRepo repository.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// ConfigValue 配置值，kind 决定 value 的形态
type ConfigValue struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

// ConfigEntry 配置项视图
type ConfigEntry struct {
	Key         string      `json:"key"`
	Value       ConfigValue `json:"value"`
	Description string      `json:"description,omitempty"`
}

// ConfigSetInput 配置写入入参
type ConfigSetInput struct {
	Key         string      `json:"key"`
	Value       ConfigValue `json:"value"`
	Description string      `json:"description"`
}

// normalizeConfigValue 校验并规整配置值
func normalizeConfigValue(v ConfigValue) (ConfigValue, error) {
	switch v.Kind {
	case constants.ConfigValueKindString:
		s, ok := v.Value.(string)
		if !ok {
			return ConfigValue{}, ErrInvalidConfigValue
		}
		return ConfigValue{Kind: constants.ConfigValueKindString, Value: s}, nil
	case constants.ConfigValueKindStringList:
		items, err := toStringList(v.Value)
		if err != nil {
			return ConfigValue{}, err
		}
		return ConfigValue{Kind: constants.ConfigValueKindStringList, Value: items}, nil
	default:
		return ConfigValue{}, ErrInvalidConfigValue
	}
}

// toStringList 把任意 JSON 数组转为字符串切片
func toStringList(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, ErrInvalidConfigValue
			}
			items = append(items, s)
		}
		return items, nil
	default:
		return nil, ErrInvalidConfigValue
	}
}

// decodeConfigValue 从存储 JSON 还原配置值
func decodeConfigValue(raw models.JSON) (ConfigValue, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return ConfigValue{}, err
	}
	var v ConfigValue
	if err := json.Unmarshal(data, &v); err != nil {
		return ConfigValue{}, err
	}
	return normalizeConfigValue(v)
}

// encodeConfigValue 把配置值编码为存储 JSON
func encodeConfigValue(v ConfigValue) (models.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out models.JSON
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get 获取单个配置项
func (s *ConfigService) Get(key string) (*ConfigEntry, error) {
	cfg, err := s.configRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}
	value, err := decodeConfigValue(cfg.ValueJSON)
	if err != nil {
		return nil, err
	}
	return &ConfigEntry{Key: cfg.Key, Value: value, Description: cfg.Description}, nil
}

// List 获取全部配置项
func (s *ConfigService) List() ([]ConfigEntry, error) {
	configs, err := s.configRepo.List()
	if err != nil {
		return nil, err
	}
	entries := make([]ConfigEntry, 0, len(configs))
	for _, cfg := range configs {
		value, err := decodeConfigValue(cfg.ValueJSON)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ConfigEntry{Key: cfg.Key, Value: value, Description: cfg.Description})
	}
	return entries, nil
}

// Set 写入配置项
func (s *ConfigService) Set(input ConfigSetInput) (*ConfigEntry, error) {
	key := strings.TrimSpace(input.Key)
	if key == "" {
		return nil, ErrInvalidConfigValue
	}
	value, err := normalizeConfigValue(input.Value)
	if err != nil {
		return nil, err
	}
	raw, err := encodeConfigValue(value)
	if err != nil {
		return nil, err
	}
	cfg := &models.AppConfig{
		Key:         key,
		ValueJSON:   raw,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.configRepo.Upsert(cfg); err != nil {
		return nil, err
	}
	return &ConfigEntry{Key: key, Value: value, Description: cfg.Description}, nil
}

// StringList 读取字符串列表类配置，不存在时返回空切片
func (s *ConfigService) StringList(key string) ([]string, error) {
	cfg, err := s.configRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	value, err := decodeConfigValue(cfg.ValueJSON)
	if err != nil {
		return nil, err
	}
	if value.Kind != constants.ConfigValueKindStringList {
		return nil, ErrInvalidConfigValue
	}
	items, _ := value.Value.([]string)
	return items, nil
}

// AllowedCategories 获取允许展示的分类
func (s *ConfigService) AllowedCategories() ([]string, error) {
	return s.StringList(constants.ConfigKeyAllowedCategories)
}

// AllowedPincodes 获取可配送的邮编
func (s *ConfigService) AllowedPincodes() ([]string, error) {
	return s.StringList(constants.ConfigKeyAllowedPincodes)
}
