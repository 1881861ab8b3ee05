package config

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver       string
	Username     string
	Password     string
	Host         string
	Port         string
	DBName       string
	SSLMode      string
	Path         string
	QueryTimeout time.Duration
}

// DSN builds a postgres connection string.
func (c DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return dsn.String()
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type AppConfig struct {
	Title        string
	ClientOrigin string
	APIOrigin    string
	APITimeout   time.Duration
}

func SetDefaults() {
	viper.SetDefault("app.port", "8000")
	viper.SetDefault("app.title", "ZEIT")
	viper.SetDefault("client.origin", "*")
	viper.SetDefault("api.origin", "")
	viper.SetDefault("api.timeout", 5*time.Second)
	viper.SetDefault("db.driver", DriverPostgres)
	viper.SetDefault("db.path", "users.db")
	viper.SetDefault("db.query-timeout", 3*time.Second)
}

func NewAppConfig() AppConfig {
	return AppConfig{
		Title:        viper.GetString("app.title"),
		ClientOrigin: viper.GetString("client.origin"),
		APIOrigin:    viper.GetString("api.origin"),
		APITimeout:   viper.GetDuration("api.timeout"),
	}
}
