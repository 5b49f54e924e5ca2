package repository

import "gorm.io/gorm"

// paginate 返回分页 scope，页码从 1 起，pageSize 非正时不分页
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return query
		}
		if page < 1 {
			page = 1
		}
		return query.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
