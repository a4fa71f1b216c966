// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package agentx

import (
	"context"
)

type contextKey int

const (
	contextKeySessionID contextKey = iota
	contextKeyTransactionID
	contextKeyPacketID
)

func withSessionID(ctx context.Context, id uint32) context.Context {
	return context.WithValue(ctx, contextKeySessionID, id)
}

func withTransactionID(ctx context.Context, id uint32) context.Context {
	return context.WithValue(ctx, contextKeyTransactionID, id)
}

func withPacketID(ctx context.Context, id uint32) context.Context {
	return context.WithValue(ctx, contextKeyPacketID, id)
}

// SessionIDFromContext returns the session id of the request being served.
func SessionIDFromContext(ctx context.Context) (uint32, bool) {
	id, ok := ctx.Value(contextKeySessionID).(uint32)
	return id, ok
}

// TransactionIDFromContext returns the transaction id of the request being served.
func TransactionIDFromContext(ctx context.Context) (uint32, bool) {
	id, ok := ctx.Value(contextKeyTransactionID).(uint32)
	return id, ok
}

// PacketIDFromContext returns the packet id of the request being served.
func PacketIDFromContext(ctx context.Context) (uint32, bool) {
	id, ok := ctx.Value(contextKeyPacketID).(uint32)
	return id, ok
}
