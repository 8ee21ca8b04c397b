package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Drivers de armazenamento aceitos em DB_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Driver lê DB_DRIVER; o padrão é sqlite.
func Driver() string {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		return DriverSQLite
	}
	return driver
}

// InitDB abre a conexão gorm para os drivers relacionais. Para
// DB_DRIVER=memory não há banco; os repositórios em memória são usados
// direto no main.
func InitDB() (*gorm.DB, error) {
	switch Driver() {
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			envOr("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			envOr("DB_HOST", "127.0.0.1"),
			envOr("DB_PORT", "3306"),
			envOr("DB_NAME", "comanda"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case DriverSQLite:
		return gorm.Open(sqlite.Open(envOr("DB_PATH", "comanda.db")), &gorm.Config{})
	default:
		return nil, fmt.Errorf("DB_DRIVER desconhecido: %q", Driver())
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
