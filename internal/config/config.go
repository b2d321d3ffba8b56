package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend はストアの実装の種類
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendHosted   Backend = "hosted"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StoreBackend Backend // postgres / sqlite / hosted

	DatabaseURL    string // あればDB_*より優先
	DBHost         string // DBホスト
	DBPort         int    // DBポート（5432）
	DBUser         string // DBユーザー
	DBPassword     string // DBパスワード
	DBName         string // DB名
	DBSSLMode      string // disable / verify-full など
	SSLCAPath      string // CA証明書のパス
	DBMaxOpenConns int
	DBMaxIdleConns int

	SQLitePath  string // sqliteのファイル
	AutoMigrate bool   // 起動時にテーブルを作る

	HostedURL     string        // ホスティング型バックエンドのURL
	HostedKey     string        // APIキー
	HostedTimeout time.Duration // HTTPタイムアウト

	CORSAllowOrigins  []string // 許可するオリジン
	RedactErrors      bool     // 5xxのメッセージを隠す
	PrometheusEnabled bool     // /metrics を出す
	LogLevel          string   // debug/info/warn/error
}

// Loadは環境変数から設定を読み、必須項目を起動時にチェックする
func Load() (Config, error) {
	dbPort, err := atoiEnv("DB_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := atoiEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := atoiEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}
	autoMigrate, err := boolEnv("AUTO_MIGRATE", false)
	if err != nil {
		return Config{}, err
	}
	redact, err := boolEnv("REDACT_ERRORS", false)
	if err != nil {
		return Config{}, err
	}
	prom, err := boolEnv("PROMETHEUS_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	hostedTimeout, err := durationEnv("HOSTED_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		StoreBackend: Backend(strings.ToLower(getenv("STORE_BACKEND", string(BackendPostgres)))),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         dbPort,
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      os.Getenv("DB_SSLMODE"),
		SSLCAPath:      os.Getenv("SSL_CA_PATH"),
		DBMaxOpenConns: maxOpen,
		DBMaxIdleConns: maxIdle,

		SQLitePath:  getenv("SQLITE_PATH", "pos.db"),
		AutoMigrate: autoMigrate,

		HostedURL:     strings.TrimRight(os.Getenv("HOSTED_URL"), "/"),
		HostedKey:     os.Getenv("HOSTED_KEY"),
		HostedTimeout: hostedTimeout,

		CORSAllowOrigins:  splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		RedactErrors:      redact,
		PrometheusEnabled: prom,
		LogLevel:          strings.ToLower(getenv("LOG_LEVEL", "info")),
	}

	//sslmode の既定値（CAがあれば検証する）
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
		if cfg.SSLCAPath != "" {
			cfg.DBSSLMode = "verify-full"
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if len(c.CORSAllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must not be empty")
	}

	//必須チェック（バックエンドごと）
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			if c.DBHost == "" {
				return fmt.Errorf("DB_HOST is required")
			}
			if c.DBUser == "" {
				return fmt.Errorf("DB_USER is required")
			}
			if c.DBPassword == "" {
				return fmt.Errorf("DB_PASSWORD is required")
			}
			if c.DBName == "" {
				return fmt.Errorf("DB_NAME is required")
			}
		}
		if c.SSLCAPath != "" {
			if _, err := os.Stat(c.SSLCAPath); err != nil {
				return fmt.Errorf("SSL_CA_PATH: %w", err)
			}
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case BackendHosted:
		if c.HostedURL == "" {
			return fmt.Errorf("HOSTED_URL is required")
		}
		if c.HostedKey == "" {
			return fmt.Errorf("HOSTED_KEY is required")
		}
		u, err := url.Parse(c.HostedURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("HOSTED_URL must be an absolute http(s) URL")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of postgres, sqlite, hosted")
	}

	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if c.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	return nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	out := []string{}
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
