package configs

import "time"

// Jobs holds configuration for the scheduled reminder runs.
type Jobs struct {
	// Enabled starts the in-process scheduler. Turn it off when an external
	// cron hits the reminder endpoints instead.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Interval is how often the reminder loops wake up. Records are only
	// notified once, so a tight interval is safe.
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// CronSecret is the bearer token required by the HTTP reminder
	// triggers. Empty disables those endpoints.
	CronSecret string `env:"CRON_SECRET"`
	// HostingLookaheadDays is how far ahead hosting renewal reminders go
	// out.
	HostingLookaheadDays int `env:"HOSTING_LOOKAHEAD_DAYS" envDefault:"30"`
}
