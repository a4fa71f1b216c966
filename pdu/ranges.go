// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// Ranges defines the pdu search range list packet.
type Ranges []Range

// MarshalTo writes all search ranges to the provided writer.
func (r Ranges) MarshalTo(w *wire.Writer) error {
	for i := range r {
		if err := r[i].MarshalTo(w); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalFrom reads search ranges until the reader is exhausted. A search
// range list is always the last element of a pdu payload.
func (r *Ranges) UnmarshalFrom(reader *wire.Reader) error {
	*r = (*r)[:0]
	for reader.Remaining() > 0 {
		rng := Range{}
		if err := rng.UnmarshalFrom(reader); err != nil {
			return err
		}
		*r = append(*r, rng)
	}
	return nil
}
