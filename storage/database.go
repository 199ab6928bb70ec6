package storage

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"rentsafe-server/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	var db *gorm.DB
	var dbError error

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "rentsafe.db"
		}
		db, dbError = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		dsn := os.Getenv("DB_CONNECTION_STRING")
		if dsn == "" {
			log.Panic("DB_CONNECTION_STRING environment variable is required")
		}
		db, dbError = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.Person{},
		&models.Property{},
		&models.Application{},
		&models.Contract{},
		&models.Escrow{},
		&models.Notification{},
		&models.AuditLog{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}

var testDBCounter int64

// InitializeTestDB opens a fresh in-memory sqlite database and runs
// migrations. Each call gets its own store; the pool is pinned to one
// connection so every session sees the same one.
func InitializeTestDB() *gorm.DB {
	name := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	if err != nil {
		log.Panic("error opening test db: " + err.Error())
	}
	if sqlDB, sqlErr := db.DB(); sqlErr == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	performMigrations(db)
	DB = db
	return db
}

// LockForUpdate applies a row-level lock on drivers that support it.
// SQLite serializes writers on its own and rejects FOR UPDATE.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
