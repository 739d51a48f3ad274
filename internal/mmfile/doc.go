// Package mmfile provides platform-specific helpers for obtaining arena
// backing memory outside the Go heap.
package mmfile
