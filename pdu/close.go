// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Close defines the pdu close packet.
type Close struct {
	Reason Reason
}

// Type returns the pdu packet type.
func (c *Close) Type() Type {
	return TypeClose
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (c *Close) MarshalTo(w *wire.Writer) error {
	w.WriteUint8(byte(c.Reason))
	w.Pad(3)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (c *Close) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	reason, err := r.ReadUint8()
	if err != nil {
		return err
	}
	c.Reason = Reason(reason)
	return r.Skip(3) // reserved
}
