package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/shared/scope"
)

type scopedRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50"`
	TenantFarmScope
}

func (scopedRecord) TableName() string { return "scoped_records" }

type tenantRecord struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"size:50"`
	Value string `gorm:"size:200"`
	TenantOnlyScope
}

func (tenantRecord) TableName() string { return "tenant_records" }

func setupScopingDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&scopedRecord{}, &tenantRecord{})
	require.NoError(t, err)

	return gdb
}

func scopedCtx(tenantID, farmID uint) context.Context {
	return scope.WithScope(context.Background(), scope.Scope{TenantID: tenantID, FarmID: farmID})
}

func seedRecords(t *testing.T, gdb *gorm.DB) {
	rows := []scopedRecord{
		{Name: "alpha", TenantFarmScope: TenantFarmScope{TenantID: 1, FarmID: 1}},
		{Name: "beta", TenantFarmScope: TenantFarmScope{TenantID: 1, FarmID: 2}},
		{Name: "gamma", TenantFarmScope: TenantFarmScope{TenantID: 2, FarmID: 3}},
		{Name: "alpha", TenantFarmScope: TenantFarmScope{TenantID: 2, FarmID: 3}},
	}
	for i := range rows {
		require.NoError(t, gdb.Create(&rows[i]).Error)
	}
}

func TestScopedQuery_Isolation(t *testing.T) {
	gdb := setupScopingDB(t)
	seedRecords(t, gdb)

	ctx := scopedCtx(1, 1)

	var found []scopedRecord
	err := ScopedQuery(ctx, gdb, &scopedRecord{}).Find(&found).Error
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alpha", found[0].Name)
	assert.Equal(t, uint(1), found[0].TenantID)
	assert.Equal(t, uint(1), found[0].FarmID)
}

func TestScopedQuery_AdditiveWithCallerFilter(t *testing.T) {
	gdb := setupScopingDB(t)
	seedRecords(t, gdb)

	ctx := scopedCtx(2, 3)

	// caller filter narrows within the scope
	var found []scopedRecord
	err := ScopedQuery(ctx, gdb, &scopedRecord{}).Where("name = ?", "gamma").Find(&found).Error
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// a caller filter naming another tenant cannot widen the result set:
	// the scoping predicate is ANDed in and the intersection is empty
	found = nil
	err = ScopedQuery(ctx, gdb, &scopedRecord{}).Where("tenant_id = ?", 1).Find(&found).Error
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScopedQuery_CountAndBulkMutation(t *testing.T) {
	gdb := setupScopingDB(t)
	seedRecords(t, gdb)

	ctx := scopedCtx(2, 3)

	var count int64
	err := ScopedQuery(ctx, gdb.Model(&scopedRecord{}), &scopedRecord{}).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// an unfiltered bulk update only ever touches the current scope
	res := ScopedQuery(ctx, gdb.Model(&scopedRecord{}), &scopedRecord{}).Update("name", "renamed")
	require.NoError(t, res.Error)
	assert.Equal(t, int64(2), res.RowsAffected)

	var untouched int64
	err = gdb.Model(&scopedRecord{}).Where("tenant_id = ? AND name = ?", 1, "renamed").Count(&untouched).Error
	require.NoError(t, err)
	assert.Zero(t, untouched)

	// same for bulk deletes
	res = ScopedQuery(ctx, gdb, &scopedRecord{}).Delete(&scopedRecord{})
	require.NoError(t, res.Error)
	assert.Equal(t, int64(2), res.RowsAffected)

	var remaining int64
	require.NoError(t, gdb.Model(&scopedRecord{}).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}

func TestInjectScope_OverridesCallerValues(t *testing.T) {
	gdb := setupScopingDB(t)

	ctx := scopedCtx(5, 8)

	// the payload claims another tenant; injection discards it
	rec := scopedRecord{Name: "forged", TenantFarmScope: TenantFarmScope{TenantID: 99, FarmID: 42}}
	InjectScope(ctx, &rec)
	require.NoError(t, gdb.Create(&rec).Error)

	var stored scopedRecord
	require.NoError(t, gdb.First(&stored, rec.ID).Error)
	assert.Equal(t, uint(5), stored.TenantID)
	assert.Equal(t, uint(8), stored.FarmID)
}

func TestInjectScope_TenantOnlyIgnoresFarm(t *testing.T) {
	ctx := scopedCtx(5, 8)

	rec := tenantRecord{Key: "currency", Value: "KWD"}
	InjectScope(ctx, &rec)
	assert.Equal(t, uint(5), rec.TenantID)
}

func TestScoping_UnscopedPassthrough(t *testing.T) {
	gdb := setupScopingDB(t)
	seedRecords(t, gdb)

	ctx := context.Background()

	// reads see everything
	var all []scopedRecord
	err := ScopedQuery(ctx, gdb, &scopedRecord{}).Find(&all).Error
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// creates keep whatever the caller set (migrations, seeds)
	rec := scopedRecord{Name: "seeded", TenantFarmScope: TenantFarmScope{TenantID: 7, FarmID: 7}}
	InjectScope(ctx, &rec)
	assert.Equal(t, uint(7), rec.TenantID)
	assert.Equal(t, uint(7), rec.FarmID)
}
