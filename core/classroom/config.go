package classroom

// Config holds configuration for the classroom platform API.
type Config struct {
	// BaseURL is the root of the platform's REST API.
	BaseURL string `mapstructure:"base_url" default:"https://classroom.googleapis.com/v1"`
	// Token is the bearer token sent on every request. Obtaining and
	// refreshing it is the operator's concern.
	Token string `mapstructure:"token" default:""`
	// PageSize is the page size requested from list endpoints.
	PageSize int `mapstructure:"page_size" default:"100"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTLSeconds is how long a fetched platform snapshot stays fresh.
	// Zero disables snapshot caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
