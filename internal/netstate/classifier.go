// Package netstate decides whether a failed remote call was a connectivity
// failure and tracks the client's current online/offline state.
package netstate

import "strings"

// networkErrorMarkers are the message fragments produced by the Go
// transport stack (net, http, resty) when a call fails for connectivity
// reasons rather than being rejected by the server.
var networkErrorMarkers = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"timeout",
	"dial tcp",
	"EOF",
	"context deadline exceeded",
	"broken pipe",
}

// IsNetworkError reports whether err looks like a connectivity failure.
//
// Classification is a pure function of the error's message text: the message
// is matched against a fixed set of transport-failure substrings. This is a
// heuristic, not a sound classification: a server-side rejection whose body
// happens to contain one of the markers is misclassified as a network
// failure (and will be queued for a replay that fails identically), while a
// transport failure with an unusual message surfaces as a hard error instead
// of being queued.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, marker := range networkErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}
