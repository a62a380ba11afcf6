package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the store uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Brand{},
		&Category{},
		&Subcategory{},
		&Feature{},
		&Specification{},
		&Product{},
		&ProductSpecValue{},
		&ProductImage{},
		&Article{},
		&User{},
		&Admin{},
		&AdminSession{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&ActivityLog{},
	)
}
