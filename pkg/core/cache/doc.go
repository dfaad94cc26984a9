// Package cache provides a bounded, thread-safe in-memory cache.
package cache
