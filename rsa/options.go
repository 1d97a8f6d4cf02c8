package rsa

import "log"

// DiagnosticCode identifies a non-fatal condition reported during analysis.
type DiagnosticCode int

const (
	// DiagSurrogateRespiration reports that no usable respiration input
	// was supplied and a surrogate was derived from the cardiac signal.
	DiagSurrogateRespiration DiagnosticCode = iota + 1

	// DiagCycleCountMismatch reports that respiratory peak and onset
	// counts did not line up during P2T preprocessing; the heuristic
	// alignment was still attempted.
	DiagCycleCountMismatch
)

// Diagnostic is a non-fatal warning emitted on a low-confidence path.
// Diagnostics never change the control flow of the analysis.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
}

// Config holds analysis settings.
type Config struct {
	// Continuous selects the continuous result form: a per-sample P2T
	// trace instead of summary scalars. Porges-Bohrer contributes
	// nothing in this mode.
	Continuous bool

	// Diagnostics receives non-fatal warnings. The default logs them via
	// the standard logger; install a handler to capture or silence them.
	Diagnostics func(Diagnostic)
}

// Option mutates a Config.
type Option func(*Config)

// WithContinuous selects between summary scalars (false, the default) and
// a continuous per-sample trace (true).
func WithContinuous(continuous bool) Option {
	return func(cfg *Config) {
		cfg.Continuous = continuous
	}
}

// WithDiagnostics installs a handler for non-fatal warnings. A nil
// handler silences them.
func WithDiagnostics(handler func(Diagnostic)) Option {
	return func(cfg *Config) {
		if handler == nil {
			handler = func(Diagnostic) {}
		}

		cfg.Diagnostics = handler
	}
}

// DefaultConfig returns the default analysis settings.
func DefaultConfig() Config {
	return Config{
		Diagnostics: logDiagnostic,
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func logDiagnostic(d Diagnostic) {
	log.Printf("rsa: warning: %s", d.Message)
}
