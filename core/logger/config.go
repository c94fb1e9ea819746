package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level that gets logged (debug, info, warn, error).
	// "debug" also switches to the development config.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the output encoding: "json" or "console".
	Format string `mapstructure:"format" default:"json"`
}
