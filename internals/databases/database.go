package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
)

var DB *gorm.DB

// ConnectDB membuka koneksi Postgres (Supabase/Railway) dan set pool.
func ConnectDB() *gorm.DB {
	dbUser := configs.GetEnv("DB_USER")
	dbPassword := configs.GetEnv("DB_PASSWORD")
	dbHost := configs.GetEnv("DB_HOST")
	dbPort := configs.GetEnv("DB_PORT", "5432")
	dbName := configs.GetEnv("DB_NAME")
	dbSSL := configs.GetEnv("DB_SSLMODE", "require")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSL)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // ✅ hindari cache prepared statement di pooler
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal koneksi ke database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Gagal ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("✅ Database terkoneksi.")
	DB = db
	return db
}
