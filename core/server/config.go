package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowedOrigins is the whitelist of host application URLs allowed to embed
	// and call the sorter (e.g., https://dam.example.com).
	AllowedOrigins []string `mapstructure:"allowed_origins" default:"http://localhost:8080"`
}

// Origins returns the whitelisted origins, trimmed and without trailing slashes.
func (c Config) Origins() []string {
	out := make([]string, 0, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
