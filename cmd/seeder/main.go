// seeder は商品マスタをJSONファイルから投入する（APIの外で行う作業）。
//
//	go run ./cmd/seeder -file products.json -migrate
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"

	"pos/internal/config"
	"pos/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	file := flag.String("file", "products.json", "JSON array of {code,name,price}")
	migrate := flag.Bool("migrate", false, "create tables before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.StoreBackend == config.BackendHosted {
		log.Fatal("seeder supports postgres and sqlite backends only")
	}
	cfg.AutoMigrate = *migrate

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer func() { _ = f.Close() }()

	products, err := db.DecodeProducts(f)
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := db.SeedProducts(context.Background(), gdb, products); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Infof("seeded %d products", len(products))
}
