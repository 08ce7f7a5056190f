package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Terminal: TerminalConfig{
			Cols: DefaultTerminalCols,
			Rows: DefaultTerminalRows,
			Term: DefaultTerminalTerm,
		},
		Session: SessionConfig{
			Shell: "",
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
	}
}
