package storage

// Config selects the bucket snapshots are written to.
type Config struct {
	// Endpoint is host:port, or a URL whose scheme decides TLS.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Bucket    string `mapstructure:"bucket" default:"sorter"`
	Region    string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds TLS handshakes and response headers. Zero keeps
	// the minio defaults.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
