package storage

// Config holds the object storage settings. Storage is optional; without
// it the service still runs and archive endpoints report unavailable.
type Config struct {
	// Endpoint is the host:port of the MinIO or S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey authenticates the client.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey pairs with AccessKey.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches the connection to TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the archived audit exports.
	Bucket string `mapstructure:"bucket" default:"classroom-audit"`
	// Region is the bucket location (e.g. us-east-1). Optional for MinIO.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds caps every phase of connection setup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
