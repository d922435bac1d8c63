package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/project-board/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ByActivity orders posts newest first by their last update or creation time
func ByActivity(db *gorm.DB) *gorm.DB {
	return db.Order("COALESCE(updated_date, created_date) DESC").Order("id DESC")
}
