// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// IndexAllocate defines the pdu index-allocate packet. The NewIndex and
// AnyIndex variants are selected through the header flags.
type IndexAllocate struct {
	Context   *Context
	Variables Variables
}

// Type returns the pdu packet type.
func (i *IndexAllocate) Type() Type {
	return TypeIndexAllocate
}

func (i *IndexAllocate) contextRef() *Context {
	return i.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (i *IndexAllocate) MarshalTo(w *wire.Writer) error {
	writeContext(w, i.Context)
	return i.Variables.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (i *IndexAllocate) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	i.Context = context
	return i.Variables.UnmarshalFrom(r)
}

// IndexDeallocate defines the pdu index-deallocate packet.
type IndexDeallocate struct {
	Context   *Context
	Variables Variables
}

// Type returns the pdu packet type.
func (i *IndexDeallocate) Type() Type {
	return TypeIndexDeallocate
}

func (i *IndexDeallocate) contextRef() *Context {
	return i.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (i *IndexDeallocate) MarshalTo(w *wire.Writer) error {
	writeContext(w, i.Context)
	return i.Variables.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (i *IndexDeallocate) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	i.Context = context
	return i.Variables.UnmarshalFrom(r)
}
