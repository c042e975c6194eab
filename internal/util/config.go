package util

// Config holds runtime settings and flags.
type Config struct {
	DataDir  string
	Language string // overrides stored language when non-empty
	LogLevel string // debug|info|warn|error
	Version  string
}
