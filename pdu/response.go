// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"time"

	"github.com/agentx-go/agentx/wire"
)

// Response defines the pdu response packet. UpTime is only relevant when
// sent from the master agent to a subagent; it is serialized in hundredths
// of a second.
type Response struct {
	UpTime    time.Duration
	Error     Error
	Index     uint16
	Variables Variables
}

// Type returns the pdu packet type.
func (r *Response) Type() Type {
	return TypeResponse
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (r *Response) MarshalTo(w *wire.Writer) error {
	upTime, err := durationToTicks(r.UpTime)
	if err != nil {
		return err
	}
	w.WriteUint32(upTime)
	w.WriteUint16(uint16(r.Error))
	w.WriteUint16(r.Index)
	return r.Variables.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (r *Response) UnmarshalFrom(reader *wire.Reader, flags Flags) error {
	upTime, err := reader.ReadUint32()
	if err != nil {
		return err
	}
	r.UpTime = ticksToDuration(upTime)

	errStatus, err := reader.ReadUint16()
	if err != nil {
		return err
	}
	r.Error = Error(errStatus)

	if r.Index, err = reader.ReadUint16(); err != nil {
		return err
	}
	return r.Variables.UnmarshalFrom(reader)
}

func (r *Response) String() string {
	return "(response " + r.Variables.String() + ")"
}
