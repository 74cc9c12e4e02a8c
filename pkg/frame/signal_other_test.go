//go:build !linux

package frame

const signalContextSupported = false
