package database

import (
	"fmt"

	"github.com/yukikurage/internship-management-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type compositeIndex struct {
	model   interface{}
	table   string
	name    string
	columns string
}

// listingIndexes back the soft-delete aware listing queries, which always filter on
// deleted alongside another column.
var listingIndexes = []compositeIndex{
	{&models.Project{}, "projects", "idx_projects_encadreur_live", "encadreur_id, deleted"},
	{&models.Project{}, "projects", "idx_projects_department_live", "department, deleted"},
	{&models.Task{}, "tasks", "idx_tasks_project_live", "project_id, deleted"},
	{&models.Task{}, "tasks", "idx_tasks_status_live", "status, deleted"},
	{&models.User{}, "users", "idx_users_email_live", "email, deleted"},
}

// liveEmailIndex keeps emails unique among live users. MySQL has no partial indexes, so
// there the registration transaction is the only guard.
const liveEmailIndex = "idx_users_email_unique_live"

// AddIndexes creates composite indexes that struct tags do not express. Existing indexes
// are skipped so the call is safe on every start.
func AddIndexes(db *gorm.DB, log *zap.Logger) error {
	migrator := db.Migrator()

	for _, idx := range listingIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug("index already exists, skipping", zap.String("index", idx.name))
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index",
			zap.String("index", idx.name),
			zap.String("table", idx.table),
			zap.String("columns", idx.columns),
		)
	}

	return addLiveEmailIndex(db, log)
}

func addLiveEmailIndex(db *gorm.DB, log *zap.Logger) error {
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
	default:
		log.Debug("partial indexes unsupported, skipping", zap.String("index", liveEmailIndex))
		return nil
	}

	if db.Migrator().HasIndex(&models.User{}, liveEmailIndex) {
		return nil
	}

	sql := fmt.Sprintf("CREATE UNIQUE INDEX %s ON users (email) WHERE deleted = false", liveEmailIndex)
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to create index %s: %w", liveEmailIndex, err)
	}

	log.Info("created index", zap.String("index", liveEmailIndex), zap.String("table", "users"))
	return nil
}
