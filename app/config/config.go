package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB      *sql.DB
	Payment PaymentConfig
}

// PaymentConfig is the UPI payee block printed on invoices.
type PaymentConfig struct {
	UPIID     string
	PayeeName string
}

var AppConfig *Config

// InitDB loads the environment and opens the shared database handle.
func InitDB() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	host := getEnv("DB_HOST", "localhost")
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "mess")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=60",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}
	log.Printf("Connecting to database %s at %s:%d", dbname, host, port)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB: db,
		Payment: PaymentConfig{
			UPIID:     getEnv("UPI_ID", "prafullharer@slc"),
			PayeeName: getEnv("UPI_PAYEE_NAME", "Prafull Harer"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetPayment() PaymentConfig {
	return AppConfig.Payment
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
