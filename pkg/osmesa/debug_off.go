//go:build !gldebug

package osmesa

const debugChecks = false
