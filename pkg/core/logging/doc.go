// Package logging builds loggers from configuration strings.
package logging
