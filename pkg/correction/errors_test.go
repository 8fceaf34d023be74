package correction

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "connection refused syscall",
			err:  fmt.Errorf("call failed: %w", syscall.ECONNREFUSED),
			want: true,
		},
		{
			name: "connection reset syscall",
			err:  fmt.Errorf("call failed: %w", syscall.ECONNRESET),
			want: true,
		},
		{
			name: "deadline exceeded",
			err:  fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			want: true,
		},
		{
			name: "net op error",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")},
			want: true,
		},
		{
			name: "url error wrapping refused",
			err:  &url.Error{Op: "Post", URL: "http://agent/correct", Err: syscall.ECONNREFUSED},
			want: true,
		},
		{
			name: "dns error",
			err:  &net.DNSError{Err: "no such host", Name: "agent"},
			want: true,
		},
		{
			name: "substring fallback",
			err:  errors.New("request failed: connection refused by peer"),
			want: true,
		},
		{
			name: "agent application error",
			err:  errors.New("correction agent /correct returned status 500"),
			want: false,
		},
		{
			name: "parse error",
			err:  errors.New("failed to decode correction agent response"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConnectionError(tt.err))
		})
	}
}
