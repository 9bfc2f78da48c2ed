package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // production or development
	Encoding     string // json or console
	ColorEnabled bool
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

const (
	ModeProduction   = "production"
	EncodingConsole  = "console"
	EncodingJSON     = "json"
	defaultLevelName = "info"
)
