package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".termling"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "termling.log"

	// DefaultTerminalCols is the default terminal column count.
	DefaultTerminalCols = 80
	// DefaultTerminalRows is the default terminal row count.
	DefaultTerminalRows = 24
	// DefaultTerminalTerm is the TERM exported to the child process.
	DefaultTerminalTerm = "xterm-256color"
)
