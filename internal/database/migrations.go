package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tableIndex struct {
	table   string
	name    string
	columns []string
}

// indexes backs the lookups every page issues.
var indexes = []tableIndex{
	// Membership checks and home page joins
	{"project_member", "idx_project_member_login_role", []string{"login_id", "project_role"}},

	// Board listings ordered by activity
	{"Post", "idx_post_project_created", []string{"project_id", "created_date"}},
	{"Post", "idx_post_parent", []string{"Post_id"}},

	// Task detail and chain reconstruction
	{"sub_task", "idx_sub_task_task_start", []string{"task_id", "start"}},
	{"sub_task", "idx_sub_task_pre", []string{"pre_sub_task_id"}},
}

// AddIndexes adds the lookup indexes that AutoMigrate does not derive from tags.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		columns := make([]clause.Column, len(idx.columns))
		for i, col := range idx.columns {
			columns[i] = clause.Column{Name: col}
		}

		err := db.Exec("CREATE INDEX ? ON ? ?",
			clause.Column{Name: idx.name},
			clause.Table{Name: idx.table},
			columns,
		).Error
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s%v", idx.name, idx.table, idx.columns)
	}

	return nil
}

// MigrateDatabase runs the post-AutoMigrate steps
func MigrateDatabase(db *gorm.DB) error {
	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
