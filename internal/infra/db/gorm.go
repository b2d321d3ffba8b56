package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pos/internal/config"
	"pos/internal/domain/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// 返した *gorm.DB は全リクエストで共有する（内部はコネクションプール）。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		//取引日時はUTCで保存する
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		sqlDB, perr := openPostgres(cfg)
		if perr != nil {
			return nil, perr
		}
		gdb, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
	case config.BackendSQLite:
		gdb, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	default:
		return nil, fmt.Errorf("store backend %q is not a sql backend", cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StoreBackend, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if cfg.AutoMigrate {
		if err := Migrate(gdb); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return gdb, nil
}

// Migrate は商品マスタ・取引・取引明細のテーブルを作る
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Product{}, &model.Order{}, &model.OrderLine{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// PostgresDSN は DATABASE_URL があればそれを、なければ DB_* から key=value 形式を組み立てる。
// SSL_CA_PATH は key=value 形式のときだけ sslrootcert に入る。
func PostgresDSN(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}

	parts := []string{
		"host=" + quoteDSN(cfg.DBHost),
		fmt.Sprintf("port=%d", cfg.DBPort),
		"user=" + quoteDSN(cfg.DBUser),
		"password=" + quoteDSN(cfg.DBPassword),
		"dbname=" + quoteDSN(cfg.DBName),
		"sslmode=" + quoteDSN(cfg.DBSSLMode),
	}
	if cfg.SSLCAPath != "" {
		parts = append(parts, "sslrootcert="+quoteDSN(cfg.SSLCAPath))
	}
	return strings.Join(parts, " ")
}

// pgxでDSNを先に解析しておく（証明書の読み込み失敗もここで分かる）
func openPostgres(cfg config.Config) (*sql.DB, error) {
	pgxCfg, err := pgx.ParseConfig(PostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	return stdlib.OpenDB(*pgxCfg), nil
}

func quoteDSN(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	default:
		return logger.Error
	}
}
