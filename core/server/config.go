package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// BodyLimitMB is the maximum request body size in megabytes.
	// Import payloads carry tens of thousands of CNPJ rows.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"50"`
	// AllowOrigins is the CORS allow list ("*" reflects the caller origin).
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}

// BodyLimitBytes returns the request body limit in bytes.
func (c Config) BodyLimitBytes() int {
	limit := c.BodyLimitMB
	if limit <= 0 {
		limit = 50
	}
	return limit * 1024 * 1024
}
