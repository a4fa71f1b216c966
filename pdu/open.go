// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"time"

	"github.com/agentx-go/agentx/wire"
)

// Open defines the pdu open packet.
type Open struct {
	Timeout     Timeout
	ID          ObjectIdentifier
	Description OctetString
}

// Type returns the pdu packet type.
func (o *Open) Type() Type {
	return TypeOpen
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (o *Open) MarshalTo(w *wire.Writer) error {
	timeout, err := timeoutByte(o.Timeout.Duration)
	if err != nil {
		return err
	}
	w.WriteUint8(timeout)
	w.Pad(3)

	if err := o.ID.MarshalTo(w); err != nil {
		return err
	}
	o.Description.MarshalTo(w)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (o *Open) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	timeout, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if err := r.Skip(3); err != nil { // reserved
		return err
	}
	o.Timeout.Duration = time.Duration(timeout) * time.Second

	if err := o.ID.UnmarshalFrom(r); err != nil {
		return err
	}
	return o.Description.UnmarshalFrom(r)
}
