// Package mmfile provides read-only memory-mapped access to replay files.
// Platforms without mmap fall back to reading the whole file.
package mmfile
