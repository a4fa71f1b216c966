// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Get defines the pdu get packet, one search range per requested variable.
type Get struct {
	Context      *Context
	SearchRanges Ranges
}

// Type returns the pdu packet type.
func (g *Get) Type() Type {
	return TypeGet
}

func (g *Get) contextRef() *Context {
	return g.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (g *Get) MarshalTo(w *wire.Writer) error {
	writeContext(w, g.Context)
	return g.SearchRanges.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (g *Get) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	g.Context = context
	return g.SearchRanges.UnmarshalFrom(r)
}
