// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Unregister defines the pdu unregister packet. Only the priority half of
// the timeout carrier is on the wire.
type Unregister struct {
	Context    *Context
	Timeout    Timeout
	RangeSubid byte
	Subtree    ObjectIdentifier
	UpperBound uint32
}

// Type returns the pdu packet type.
func (u *Unregister) Type() Type {
	return TypeUnregister
}

func (u *Unregister) contextRef() *Context {
	return u.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (u *Unregister) MarshalTo(w *wire.Writer) error {
	writeContext(w, u.Context)

	w.WriteUint8(0) // reserved
	w.WriteUint8(u.Timeout.Priority)
	w.WriteUint8(u.RangeSubid)
	w.WriteUint8(0)

	if err := u.Subtree.MarshalTo(w); err != nil {
		return err
	}
	writeUpperBound(w, u.RangeSubid, u.UpperBound)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (u *Unregister) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	u.Context = context

	header, err := r.ReadBytes(4)
	if err != nil {
		return err
	}
	u.Timeout.Priority = header[1]
	u.RangeSubid = header[2]
	// header[0] and header[3] are reserved and ignored

	if err := u.Subtree.UnmarshalFrom(r); err != nil {
		return err
	}
	u.UpperBound, err = readUpperBound(r, u.RangeSubid)
	return err
}
