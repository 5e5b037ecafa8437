// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to Crestline: the
// MongoDB connection, session cookies, Azure blob storage for media,
// and the Google OAuth credentials for CMS sign-in.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string
	MongoDatabase string

	// Session management configuration
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)
	SessionTTL    time.Duration

	// Azure blob storage for media
	BlobConnectionString string
	BlobContainer        string
	MediaBaseURL         string // public origin media URLs are built from

	// Google OAuth for CMS sign-in
	GoogleClientID     string
	GoogleClientSecret string

	// Externally visible origin, used for the OAuth callback URL
	BaseURL string

	// Email seeded into the allow-list as an admin on startup, so a
	// fresh deployment has someone who can sign in
	SeedAdminEmail string
}
