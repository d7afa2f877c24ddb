package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.TenantModel{},
		&models.FarmModel{},
		&models.UserModel{},
		&models.SettingModel{},
		&models.BreedModel{},
		&models.GoatModel{},
		&models.BreedingModel{},
		&models.BirthModel{},
		&models.HealthEventModel{},
		&models.SaleModel{},
		&models.FeedScheduleModel{},
		&models.ActivityLogModel{},
	))

	return gdb
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func scopedCtx(tenantID, farmID uint) context.Context {
	return scope.WithScope(context.Background(), scope.Scope{TenantID: tenantID, FarmID: farmID})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
