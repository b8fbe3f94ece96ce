//go:build !debug
// +build !debug

package gvoxels

// No-op variants so the default build pays nothing in the hot loops.

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
