// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Ping defines the pdu ping packet.
type Ping struct {
	Context *Context
}

// Type returns the pdu packet type.
func (p *Ping) Type() Type {
	return TypePing
}

func (p *Ping) contextRef() *Context {
	return p.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (p *Ping) MarshalTo(w *wire.Writer) error {
	writeContext(w, p.Context)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (p *Ping) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	p.Context = context
	return nil
}
