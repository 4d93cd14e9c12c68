//go:build windows

package prs

// isInterrupted is always false on windows: there is no EINTR-equivalent
// transient condition for file/pipe writes.
func isInterrupted(error) bool {
	return false
}
