package inkling

import "time"

// Default configuration values.
const (
	DefaultSiteTitle     = "Newsletter"
	DefaultSendInterval  = 1200 * time.Millisecond
	DefaultProgressEvery = 20
	DefaultTestPrefix    = "[TEST] "
)

// DefaultAuthHosts are the document and user-content hosts that require
// elevated credentials when fetching embedded assets.
func DefaultAuthHosts() []string {
	return []string{"googleusercontent.com", "docs.google.com", "drive.google.com"}
}

// Config enumerates every recognized pipeline option with its default.
// It is validated at startup and passed explicitly to the pipeline; nothing
// reads configuration as ambient global state.
type Config struct {
	// DocumentURL is the export URL returning the raw document HTML.
	DocumentURL string

	// SiteTitle brands page shells and the archive listing.
	SiteTitle string

	// BaseURL is the published site root, used for view-in-browser links
	// and feed entry links. Optional; when empty no browser links are
	// emitted.
	BaseURL string

	// AuthHosts lists host suffixes that receive bearer credentials on
	// asset fetches.
	AuthHosts []string

	// SendInterval is the fixed delay between successive sends, respecting
	// platform rate limits.
	SendInterval time.Duration

	// ProgressEvery controls how often the send loop reports progress,
	// in contacts.
	ProgressEvery int

	// TestPrefix is prepended to the subject of test sends.
	TestPrefix string

	// ShowBrowserBanner adds the view-in-browser button atop emails when a
	// browser URL is available.
	ShowBrowserBanner bool

	// AllowSubscribe emits the subscribe page and accepts signups.
	AllowSubscribe bool

	// SubscribeURL is the form action for the subscribe page. Required
	// when AllowSubscribe is set.
	SubscribeURL string
}

// DefaultConfig returns a Config with every option at its default.
func DefaultConfig() Config {
	return Config{
		SiteTitle:         DefaultSiteTitle,
		AuthHosts:         DefaultAuthHosts(),
		SendInterval:      DefaultSendInterval,
		ProgressEvery:     DefaultProgressEvery,
		TestPrefix:        DefaultTestPrefix,
		ShowBrowserBanner: true,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.DocumentURL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if c.SendInterval < 0 {
		return Errorf(EINVALID, "send interval must not be negative")
	}
	if c.ProgressEvery < 1 {
		return Errorf(EINVALID, "progress interval must be positive")
	}
	if c.AllowSubscribe && c.SubscribeURL == "" {
		return Errorf(EINVALID, "subscribe URL required when subscriptions are enabled")
	}
	return nil
}
