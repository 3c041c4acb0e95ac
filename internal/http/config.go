package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	QuoteReader QuoteReader
	Database    HealthChecker
	Counter     QuoteCounter

	// Static assets directory served under /static; empty disables it.
	StaticPath string

	// Value for Access-Control-Allow-Origin.
	CORSAllowOrigin string

	// Application info
	Version string
}
