package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Convention pins the SIS export layout instead of detecting it from
	// the header row (auto, roster, schedule).
	Convention string `mapstructure:"convention" default:"auto"`
	// BodyLimitMB caps upload size in megabytes. Roster exports for a whole
	// school can pass the framework's default limit.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

const (
	ConventionAuto     = "auto"
	ConventionRoster   = "roster"
	ConventionSchedule = "schedule"
)

// IsValidConvention checks if the configured SIS layout is valid.
func (c Config) IsValidConvention() bool {
	switch c.Convention {
	case ConventionAuto, ConventionRoster, ConventionSchedule:
		return true
	default:
		return false
	}
}
