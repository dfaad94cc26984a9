// Package version holds the version of the tool and its front ends.
package version
