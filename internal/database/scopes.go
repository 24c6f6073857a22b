package database

import (
	"gorm.io/gorm"
)

// Live restricts a query on table to rows that have not been soft deleted.
func Live(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".deleted = ?", false)
	}
}

// Limit caps the number of returned rows when n is positive.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}
