// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package agentx

import (
	"log/slog"
	"time"

	"github.com/agentx-go/agentx/pdu"
)

type dialOptions struct {
	logger            *slog.Logger
	timeout           time.Duration
	reconnectInterval time.Duration
	networkByteOrder  bool
}

// DialOption configures a client.
type DialOption func(*dialOptions)

// WithLogger sets the logger used by the client.
func WithLogger(logger *slog.Logger) DialOption {
	return func(o *dialOptions) {
		o.logger = logger
	}
}

// WithTimeout sets the session timeout announced to the master agent.
func WithTimeout(timeout time.Duration) DialOption {
	return func(o *dialOptions) {
		o.timeout = timeout
	}
}

// WithReconnectInterval sets the interval between re-connect attempts
// after the connection to the master agent was lost.
func WithReconnectInterval(interval time.Duration) DialOption {
	return func(o *dialOptions) {
		o.reconnectInterval = interval
	}
}

// WithNetworkByteOrder makes the client encode all self-originated
// messages in network (big-endian) byte order. The default is
// little-endian. Incoming messages are decoded in whichever order their
// header announces, independent of this setting.
func WithNetworkByteOrder() DialOption {
	return func(o *dialOptions) {
		o.networkByteOrder = true
	}
}

// headerFlags returns the header flags for self-originated messages.
func (o *dialOptions) headerFlags() pdu.Flags {
	if o.networkByteOrder {
		return pdu.FlagNetworkByteOrder
	}
	return 0
}
