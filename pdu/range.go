// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"fmt"

	"github.com/agentx-go/agentx/wire"
)

// Range defines the pdu search range packet. The include flag of From is
// meaningful (an included start means the walk may return the start oid
// itself); the include flag of To is always encoded as zero. A null To
// denotes "no upper bound".
type Range struct {
	From ObjectIdentifier
	To   ObjectIdentifier
}

// MarshalTo writes the search range to the provided writer.
func (r *Range) MarshalTo(w *wire.Writer) error {
	if err := r.From.MarshalTo(w); err != nil {
		return err
	}
	to := r.To
	to.Include = false
	return to.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (r *Range) UnmarshalFrom(reader *wire.Reader) error {
	if err := r.From.UnmarshalFrom(reader); err != nil {
		return err
	}
	if err := r.To.UnmarshalFrom(reader); err != nil {
		return err
	}
	r.To.Include = false
	return nil
}

func (r *Range) String() string {
	return fmt.Sprintf("(range %v - %v)", r.From, r.To)
}
