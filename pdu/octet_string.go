// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// OctetString defines the pdu octet string packet. On the wire it is
// right-padded with zero bytes to the next multiple of four; the declared
// length is always the unpadded length.
type OctetString struct {
	Text string
}

// padding returns the number of pad bytes for a content length.
func padding(length int) int {
	return (4 - (length % 4)) & 3
}

// MarshalTo writes the octet string to the provided writer.
func (o *OctetString) MarshalTo(w *wire.Writer) {
	w.WriteUint32(uint32(len(o.Text)))
	w.WriteBytes([]byte(o.Text))
	w.Pad(padding(len(o.Text)))
}

// UnmarshalFrom sets the packet structure from the provided reader. Pad
// bytes are skipped without being validated.
func (o *OctetString) UnmarshalFrom(r *wire.Reader) error {
	length, err := r.ReadUint32()
	if err != nil {
		return err
	}
	text, err := r.ReadBytes(int(length))
	if err != nil {
		return err
	}
	if err := r.Skip(padding(int(length))); err != nil {
		return err
	}
	o.Text = string(text)
	return nil
}

func (o OctetString) String() string {
	return o.Text
}
