// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Notify defines the pdu notify packet.
type Notify struct {
	Context   *Context
	Variables Variables
}

// Type returns the pdu packet type.
func (n *Notify) Type() Type {
	return TypeNotify
}

func (n *Notify) contextRef() *Context {
	return n.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (n *Notify) MarshalTo(w *wire.Writer) error {
	writeContext(w, n.Context)
	return n.Variables.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (n *Notify) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	n.Context = context
	return n.Variables.UnmarshalFrom(r)
}
