package netstate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: true},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: true},
		{name: "dns failure", err: errors.New("lookup api.clinic.example: no such host"), want: true},
		{name: "unreachable", err: errors.New("connect: network is unreachable"), want: true},
		{name: "io timeout", err: errors.New("read tcp 10.0.0.1:443: i/o timeout"), want: true},
		{name: "plain timeout", err: errors.New("Client.Timeout exceeded while awaiting headers"), want: true},
		{name: "context deadline", err: errors.New("context deadline exceeded"), want: true},
		{name: "broken pipe", err: errors.New("write: broken pipe"), want: true},
		{name: "eof", err: errors.New("unexpected EOF"), want: true},
		{name: "wrapped transport error", err: fmt.Errorf("list cases request: %w", errors.New("dial tcp: connection refused")), want: true},
		{name: "server rejection", err: errors.New("conflict: case was modified"), want: false},
		{name: "validation error", err: errors.New("bad request: patient name is required"), want: false},
		{name: "unauthorized", err: errors.New("unauthorized"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNetworkError(tt.err))
		})
	}
}
