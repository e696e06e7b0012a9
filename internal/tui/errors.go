package tui

import (
	"fmt"

	"github.com/vetward/vetward/internal/netstate"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if netstate.IsNetworkError(err) {
		return "No network or the server is unreachable"
	}
	return err.Error()
}

func syncErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if netstate.IsNetworkError(err) {
		return "sync not performed. No network or the server is unreachable"
	}
	return fmt.Sprintf("sync error: %v", err)
}
