package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: User and Group must be migrated before the models that reference them
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Group{},
		&GroupTopic{},
		&GroupMembership{},
		&Blog{},
		&Post{},
		&PostTopic{},
		&Comment{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
