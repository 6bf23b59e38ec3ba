package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/redis/go-redis/v9"
)

// DB is the global database connection
var DB *sql.DB

// RedisClient is the global Redis client
var RedisClient *redis.Client

const connectRetries = 10

// InitDatabases opens the MySQL and Redis connections. Both stores must be
// reachable before the server starts serving quiz traffic.
func InitDatabases() {
	initMySQL()
	initRedis()
}

func initMySQL() {
	user := getEnv("MYSQL_USER", "root")
	password := getEnv("MYSQL_PASSWORD", "")
	host := getEnv("MYSQL_HOST", "localhost")
	port := getEnv("MYSQL_PORT", "3306")
	name := getEnv("MYSQL_DATABASE", "judgegpt")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		user, password, host, port, name)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	for i := 1; i <= connectRetries; i++ {
		err = DB.Ping()
		if err == nil {
			break
		}
		log.Printf("Waiting for MySQL... (%d/%d)", i, connectRetries)
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		log.Fatalf("Failed to connect to MySQL after %d attempts: %v", connectRetries, err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	log.Println("Successfully connected to MySQL database")
}

func initRedis() {
	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	password := getEnv("REDIS_PASSWORD", "")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	var err error
	for i := 1; i <= connectRetries; i++ {
		err = RedisClient.Ping(ctx).Err()
		if err == nil {
			break
		}
		log.Printf("Waiting for Redis... (%d/%d)", i, connectRetries)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("Failed to connect to Redis after %d attempts: %v", connectRetries, err)
	}

	log.Println("Successfully connected to Redis")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
