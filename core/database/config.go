package database

import (
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config selects the reorder history database.
type Config struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the schema for mysql, or a file path or ":memory:" for sqlite.
	Name   string `mapstructure:"name" default:"sorter"`
	Driver string `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds dialing, reads, writes and the startup ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DSN returns the mysql connection string. The password is URL-escaped.
func (c Config) DSN() string {
	t := int(c.timeout().Seconds())
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		url.UserPassword(c.User, c.Password).String(), c.Host, c.Port, c.Name, t, t, t)
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "sqlite":
		return sqlite.Open(c.Name), nil
	case "mysql", "":
		return mysql.Open(c.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
}
