// Package file stores vibeyf settings as TOML under ~/.vibeyf.
//
// Keys are dotted ("backend.url", "reveal.delay_ms") and map onto nested
// tables in config.toml.
package file
