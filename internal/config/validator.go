package config

import "fmt"

var validEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
	"staging":     true,
	"prod":        true,
	"production":  true,
	"test":        true,
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks that loaded values are usable before the app starts
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.DBName == "" {
		return fmt.Errorf("database name must not be empty")
	}
	return nil
}
