// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// AddAgentCaps defines the pdu add-agent-caps packet.
type AddAgentCaps struct {
	Context     *Context
	ID          ObjectIdentifier
	Description OctetString
}

// Type returns the pdu packet type.
func (a *AddAgentCaps) Type() Type {
	return TypeAddAgentCaps
}

func (a *AddAgentCaps) contextRef() *Context {
	return a.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (a *AddAgentCaps) MarshalTo(w *wire.Writer) error {
	writeContext(w, a.Context)
	if err := a.ID.MarshalTo(w); err != nil {
		return err
	}
	a.Description.MarshalTo(w)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (a *AddAgentCaps) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	a.Context = context

	if err := a.ID.UnmarshalFrom(r); err != nil {
		return err
	}
	return a.Description.UnmarshalFrom(r)
}

// RemoveAgentCaps defines the pdu remove-agent-caps packet.
type RemoveAgentCaps struct {
	Context *Context
	ID      ObjectIdentifier
}

// Type returns the pdu packet type.
func (rm *RemoveAgentCaps) Type() Type {
	return TypeRemoveAgentCaps
}

func (rm *RemoveAgentCaps) contextRef() *Context {
	return rm.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (rm *RemoveAgentCaps) MarshalTo(w *wire.Writer) error {
	writeContext(w, rm.Context)
	return rm.ID.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (rm *RemoveAgentCaps) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	rm.Context = context
	return rm.ID.UnmarshalFrom(r)
}
