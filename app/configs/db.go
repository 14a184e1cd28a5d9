package configs

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector(env ENV) (gorm.Dialector, string, error) {
	switch env.DBDriver {
	case "mysql":
		port := env.DBPort
		if port == "" {
			port = "3306"
		}
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser,
			env.DBPassword,
			env.DBHost,
			port,
			env.DBName,
		)
		return mysql.Open(dsn), dsn, nil
	case "postgres":
		port := env.DBPort
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			env.DBHost,
			env.DBUser,
			env.DBPassword,
			env.DBName,
			port,
		)
		return postgres.Open(dsn), dsn, nil
	case "sqlite":
		dsn := env.DBName + ".db?_foreign_keys=on"
		return sqlite.Open(dsn), dsn, nil
	default:
		return nil, "", fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func OpenConnection() (*gorm.DB, error) {
	dial, dsn, err := dialector(LoadENV)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if LoadENV.AppEnv == "production" {
		cfg.Logger = logger.Default.LogMode(logger.Error)
	}

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		log.Printf("Attempting to connect to %s database (Attempt %d/%d)", LoadENV.DBDriver, i+1, maxRetries)
		db, err := gorm.Open(dial, cfg)
		if err == nil {

			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetConnMaxLifetime(30 * time.Minute)
					log.Println("✅ Database connection successful!")
					return db, nil
				}
			}

			log.Printf("❌ Failed to ping database: %v. Retrying in %v...", pingErr, retryDelay)
		} else {
			log.Printf("❌ Failed to open GORM connection: %v. Retrying in %v...", err, retryDelay)
		}

		time.Sleep(retryDelay)
	}

	if LoadENV.DBDriver == "sqlite" {
		return nil, fmt.Errorf("failed to open sqlite database %s after %d retries", dsn, maxRetries)
	}
	return nil, fmt.Errorf("failed to connect to the %s database at %s:%s after %d retries", LoadENV.DBDriver, LoadENV.DBHost, LoadENV.DBPort, maxRetries)
}
