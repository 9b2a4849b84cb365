package config

const (
	defaultCacheDir          = "~/.cache/simcheck"
	defaultOnParseError      = ParseErrorFallback
	defaultSpinnerIntervalMS = 100
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
		},
		Compare: Compare{
			CodeExtensions:    []string{".go"},
			OnParseError:      defaultOnParseError,
			SpinnerIntervalMS: defaultSpinnerIntervalMS,
		},
		Cache: Cache{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
