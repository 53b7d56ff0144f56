package database

import "alcove/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Forum{},
		&models.Topic{},
		&models.Post{},
		&models.Award{},
		&models.UserAward{},
		&models.Score{},
	}
}
