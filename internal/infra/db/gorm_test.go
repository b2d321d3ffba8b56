package db

import (
	"context"
	"strings"
	"testing"

	"pos/internal/config"
	"pos/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Connect(config.Config{
		StoreBackend:   config.BackendSQLite,
		SQLitePath:     ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		AutoMigrate:    true,
		LogLevel:       "error",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		_ = sqlDB.Close()
	})
	return gdb
}

func TestPostgresDSN_FromParts(t *testing.T) {
	dsn := PostgresDSN(config.Config{
		DBHost:     "db.example.com",
		DBPort:     5432,
		DBUser:     "pos",
		DBPassword: "p@ss 'word'",
		DBName:     "pos",
		DBSSLMode:  "verify-full",
		SSLCAPath:  "/etc/ssl/ca.pem",
	})

	assert.Equal(t,
		`host='db.example.com' port=5432 user='pos' password='p@ss \'word\'' dbname='pos' sslmode='verify-full' sslrootcert='/etc/ssl/ca.pem'`,
		dsn)
}

func TestPostgresDSN_DatabaseURLWins(t *testing.T) {
	dsn := PostgresDSN(config.Config{DatabaseURL: "postgres://u:p@h/db", DBHost: "ignored"})
	assert.Equal(t, "postgres://u:p@h/db", dsn)
}

func TestConnect_RejectsHostedBackend(t *testing.T) {
	_, err := Connect(config.Config{StoreBackend: config.BackendHosted, DBMaxOpenConns: 1})
	assert.ErrorContains(t, err, "not a sql backend")
}

func TestConnect_SQLiteMigrates(t *testing.T) {
	gdb := memoryDB(t)

	for _, table := range []string{"product_master", "transactions", "transaction_details"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
}

func TestDecodeProducts(t *testing.T) {
	products, err := DecodeProducts(strings.NewReader(`[
		{"code":" ABC123 ","name":"Coffee","price":300},
		{"code":"XYZ","name":"Tea","price":250}
	]`))
	require.NoError(t, err)
	assert.Equal(t, []model.Product{
		{Code: "ABC123", Name: "Coffee", Price: 300},
		{Code: "XYZ", Name: "Tea", Price: 250},
	}, products)

	_, err = DecodeProducts(strings.NewReader(`[{"code":" ","name":"x","price":1}]`))
	assert.EqualError(t, err, "products[0].code is required")

	_, err = DecodeProducts(strings.NewReader(`[{"code":"A"},{"code":"A"}]`))
	assert.ErrorContains(t, err, "duplicated")

	_, err = DecodeProducts(strings.NewReader(`{`))
	assert.ErrorContains(t, err, "decode products")
}

func TestSeedProducts_Upserts(t *testing.T) {
	ctx := context.Background()
	gdb := memoryDB(t)

	require.NoError(t, SeedProducts(ctx, gdb, []model.Product{
		{Code: "ABC123", Name: "Coffee", Price: 300},
		{Code: "XYZ", Name: "Tea", Price: 250},
	}))
	require.NoError(t, SeedProducts(ctx, gdb, []model.Product{
		{Code: "ABC123", Name: "Coffee L", Price: 350},
	}))
	require.NoError(t, SeedProducts(ctx, gdb, nil))

	var got []model.Product
	require.NoError(t, gdb.Order("code").Find(&got).Error)
	assert.Equal(t, []model.Product{
		{Code: "ABC123", Name: "Coffee L", Price: 350},
		{Code: "XYZ", Name: "Tea", Price: 250},
	}, got)
}
