// Package config parses fibfinder's command line into an AppConfig.
//
// Values resolve in the order CLI flags > FIBFINDER_* environment variables >
// defaults. Positional arguments select the mode, the algorithm, the index and
// the optional reference file.
package config
