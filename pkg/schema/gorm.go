package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Dimensions come before the fact table.
func AllModels() []any {
	return []any{
		&Song{},
		&Artist{},
		&User{},
		&Time{},
		&SongPlay{},
	}
}

// TableNames returns the names of all tables of the schema.
func TableNames() []string {
	var res []string
	for _, m := range AllModels() {
		if gen, ok := m.(DDLGenerator); ok {
			res = append(res, gen.TableName())
		}
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
