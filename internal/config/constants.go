package config

const (
	// DefaultDatabaseURL is where the quote store lives unless DATABASE_URL says otherwise.
	DefaultDatabaseURL = "sqlite:db/quotes.db"

	// DefaultPort is the listen port unless PORT says otherwise.
	DefaultPort = 3000

	// DefaultStaticPath holds the stylesheet referenced by the HTML page.
	DefaultStaticPath = "./assets/static"
)
