// Package cli is responsible for interpreting command-line arguments and
// handling process-level concerns like exit codes. It translates the raw
// argument list into the application's internal configuration.
package cli
