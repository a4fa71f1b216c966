// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// GetBulk defines the pdu get-bulk packet.
type GetBulk struct {
	Context        *Context
	NonRepeaters   uint16
	MaxRepetitions uint16
	SearchRanges   Ranges
}

// Type returns the pdu packet type.
func (g *GetBulk) Type() Type {
	return TypeGetBulk
}

func (g *GetBulk) contextRef() *Context {
	return g.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (g *GetBulk) MarshalTo(w *wire.Writer) error {
	writeContext(w, g.Context)
	w.WriteUint16(g.NonRepeaters)
	w.WriteUint16(g.MaxRepetitions)
	return g.SearchRanges.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (g *GetBulk) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	g.Context = context

	if g.NonRepeaters, err = r.ReadUint16(); err != nil {
		return err
	}
	if g.MaxRepetitions, err = r.ReadUint16(); err != nil {
		return err
	}
	return g.SearchRanges.UnmarshalFrom(r)
}
