package live

// Config carries live validation settings loadable from the environment.
type Config struct {
	// SessionParam is the form/query parameter carrying the session ID.
	SessionParam string `env:"LIVE_SESSION_PARAM" envDefault:"session"`

	// EventParam and FieldParam name the metadata parameters a field
	// interaction event posts alongside the form values.
	EventParam string `env:"LIVE_EVENT_PARAM" envDefault:"event"`
	FieldParam string `env:"LIVE_FIELD_PARAM" envDefault:"field"`

	// MaxSessions caps concurrently tracked sessions.
	MaxSessions int `env:"LIVE_MAX_SESSIONS" envDefault:"1024"`
}
