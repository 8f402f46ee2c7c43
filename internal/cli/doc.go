// Package cli implements the yoinky command-line interface.
//
// # Command Structure
//
//	yoinky [input]            - Run the dashboard (the optional argument is ignored)
//	yoinky version [--short]  - Print version information
//	yoinky config             - Print the effective configuration as YAML
//	yoinky completion <shell> - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --interval, --debug) are defined on the root
// command. Flags win over environment variables, which win over the config
// file, which wins over built-in defaults.
//
// # Logging
//
// The dashboard owns the terminal, so log output never goes to stdout or
// stderr while it runs. With --debug (or YOINKY_DEBUG set) it is written to
// the configured debug_log file; otherwise it is discarded.
package cli
