//go:build !windows

package prs

import (
	"errors"
	"syscall"
)

// isInterrupted reports whether err is the transient EINTR a blocking
// write can return when a signal interrupts it mid-syscall. The Go
// runtime retries most of these internally, but the encoder's flush loop
// honors the spec's explicit retry-on-interrupt requirement regardless.
func isInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
