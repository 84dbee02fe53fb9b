package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (the file path for sqlite).
	Name string `mapstructure:"name" default:"ucs"`
	// Driver is the database driver (mysql, sqlite). Empty disables the database.
	Driver string `mapstructure:"driver" default:""`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}

// Enabled reports whether a database driver is configured.
func (c Config) Enabled() bool {
	return c.Driver != ""
}

// Timeout returns the connection timeout, falling back to 5 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.Driver == "sqlite" {
		return c.Name
	}

	// Special characters in the password must be URL encoded.
	userInfo := url.UserPassword(c.User, c.Password).String()
	secs := int(c.Timeout() / time.Second)
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, secs, secs, secs)
}
