// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"time"

	"github.com/agentx-go/agentx/wire"
)

// Register defines the pdu register packet. If RangeSubid is not zero, the
// registration covers a range of subtrees and UpperBound carries the upper
// bound of the ranged subidentifier.
type Register struct {
	Context    *Context
	Timeout    Timeout
	RangeSubid byte
	Subtree    ObjectIdentifier
	UpperBound uint32
}

// Type returns the pdu packet type.
func (r *Register) Type() Type {
	return TypeRegister
}

func (r *Register) contextRef() *Context {
	return r.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (r *Register) MarshalTo(w *wire.Writer) error {
	writeContext(w, r.Context)

	timeout, err := timeoutByte(r.Timeout.Duration)
	if err != nil {
		return err
	}
	w.WriteUint8(timeout)
	w.WriteUint8(r.Timeout.Priority)
	w.WriteUint8(r.RangeSubid)
	w.WriteUint8(0)

	if err := r.Subtree.MarshalTo(w); err != nil {
		return err
	}
	writeUpperBound(w, r.RangeSubid, r.UpperBound)
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (r *Register) UnmarshalFrom(reader *wire.Reader, flags Flags) error {
	context, err := readContext(reader, flags)
	if err != nil {
		return err
	}
	r.Context = context

	header, err := reader.ReadBytes(4)
	if err != nil {
		return err
	}
	r.Timeout.Duration = time.Duration(header[0]) * time.Second
	r.Timeout.Priority = header[1]
	r.RangeSubid = header[2]
	// header[3] is reserved and ignored

	if err := r.Subtree.UnmarshalFrom(reader); err != nil {
		return err
	}
	r.UpperBound, err = readUpperBound(reader, r.RangeSubid)
	return err
}
