// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Context defines a non-default context name. It precedes the payload of a
// packet whose header carries FlagNonDefaultContext.
type Context struct {
	OctetString
}

// readContext reads a context if the header flags announce one.
func readContext(r *wire.Reader, flags Flags) (*Context, error) {
	if flags&FlagNonDefaultContext == 0 {
		return nil, nil
	}
	context := &Context{}
	if err := context.UnmarshalFrom(r); err != nil {
		return nil, err
	}
	return context, nil
}

// writeContext writes the context if it is present.
func writeContext(w *wire.Writer, context *Context) {
	if context != nil {
		context.MarshalTo(w)
	}
}

// contextPacket is implemented by every packet that may carry a
// non-default context. The message codec uses it to derive
// FlagNonDefaultContext on encode.
type contextPacket interface {
	contextRef() *Context
}
