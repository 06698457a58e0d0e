package cmd

import (
	"fmt"
	"time"
)

const (
	DefaultUPIPayee     = "akshayafoods@ybl"
	DefaultUPIPayeeName = "Akshaya Foods"
)

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	RedisAddr       string
	RabbitMQURL     string
	UPIPayee        string
	UPIPayeeName    string
	MenuSeed        bool
	EventBufferSize int
	ShutdownTimeout time.Duration
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
