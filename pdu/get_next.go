// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// GetNext defines the pdu get-next packet.
type GetNext struct {
	Context      *Context
	SearchRanges Ranges
}

// Type returns the pdu packet type.
func (g *GetNext) Type() Type {
	return TypeGetNext
}

func (g *GetNext) contextRef() *Context {
	return g.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (g *GetNext) MarshalTo(w *wire.Writer) error {
	writeContext(w, g.Context)
	return g.SearchRanges.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (g *GetNext) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	g.Context = context
	return g.SearchRanges.UnmarshalFrom(r)
}
