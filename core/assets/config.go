package assets

// Config holds configuration for the DAM host the sorter talks to.
type Config struct {
	// URL is the base URL of the host server (e.g., https://dam.example.com).
	URL string `mapstructure:"url" default:"http://localhost:8080"`
	// AuthToken is a pre-issued bearer token. Takes precedence over Username/Password.
	AuthToken string `mapstructure:"auth_token" default:""`
	// Username is used for API login when no token is configured.
	Username string `mapstructure:"username" default:""`
	// Password is used for API login when no token is configured.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds a single HTTP attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ConnectTimeoutSeconds bounds the startup reachability check.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"10"`
	// MaxRetries is the number of retries for transient failures (429, 5xx, network).
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryWaitMillis is the initial backoff between retries.
	RetryWaitMillis int `mapstructure:"retry_wait_millis" default:"200"`
	// PositionField is the metadata field holding the explicit sort order.
	PositionField string `mapstructure:"position_field" default:"explicitSortOrder"`
	// Sort is the host sort expression used when fetching a folder.
	Sort string `mapstructure:"sort" default:"explicitSortOrder,name"`
	// PageSize is the number of hits requested per search page.
	PageSize int `mapstructure:"page_size" default:"500"`
	// Columns lists the display columns; "*" shows every metadata field.
	Columns []string `mapstructure:"columns" default:"name,status,fileSize,explicitSortOrder"`
	// Statuses lists the statuses allowed for bulk status updates.
	Statuses []string `mapstructure:"statuses" default:"Draft,Review,Approved,Published"`
}

// AllowsStatus reports whether status is one of the configured statuses.
func (c Config) AllowsStatus(status string) bool {
	for _, s := range c.Statuses {
		if s == status {
			return true
		}
	}
	return false
}
