package repository

import "gorm.io/gorm"

// AutoMigrate brings the schema up to date for every table this package
// owns. Used by cmd/seed and the test suites; production deployments run
// it at startup too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&memberModel{},
		&equipmentModel{},
		&maintenanceLogModel{},
	)
}
