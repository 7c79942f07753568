package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type ctxKey string

// RequestIDKey is the context key under which middleware stores the request id.
const RequestIDKey ctxKey = "request_id"
