package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resmap/internal/api/models"
)

// newTestDB opens a throwaway pure-Go sqlite database and migrates the
// requested models.
func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if len(migrate) > 0 {
		require.NoError(t, db.AutoMigrate(migrate...), "automigrate")
	}
	return db
}

func TestGormFinder_FindByID(t *testing.T) {
	db := newTestDB(t, &models.Product{})
	finder := &GormFinder{Db: db}

	product := models.Product{SKU: "SKU-1", Name: "Widget", PriceCents: 990}
	require.NoError(t, db.Create(&product).Error)

	found, err := finder.FindByID(context.Background(), reflect.TypeOf(models.Product{}), product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	loaded, ok := found.(*models.Product)
	require.True(t, ok)
	assert.Equal(t, "SKU-1", loaded.SKU)
	assert.Equal(t, int64(990), loaded.PriceCents)
}

func TestGormFinder_PointerTypeAccepted(t *testing.T) {
	db := newTestDB(t, &models.Product{})
	finder := &GormFinder{Db: db}

	product := models.Product{SKU: "SKU-2", Name: "Widget"}
	require.NoError(t, db.Create(&product).Error)

	found, err := finder.FindByID(context.Background(), reflect.TypeOf(&models.Product{}), product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "SKU-2", found.(*models.Product).SKU)
}

func TestGormFinder_NotFound(t *testing.T) {
	db := newTestDB(t, &models.Product{})
	finder := &GormFinder{Db: db}

	found, err := finder.FindByID(context.Background(), reflect.TypeOf(models.Product{}), 999)
	require.NoError(t, err, "a missing row is not an error")
	assert.Nil(t, found)
}
