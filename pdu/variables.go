// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"strings"

	"github.com/agentx-go/agentx/value"
	"github.com/agentx-go/agentx/wire"
)

// Variables defines a list of variable bindings.
type Variables []Variable

// Add adds the provided variable.
func (v *Variables) Add(oid value.OID, t VariableType, val interface{}) {
	variable := Variable{}
	variable.Set(oid, t, val)
	*v = append(*v, variable)
}

// MarshalTo writes all variables to the provided writer.
func (v Variables) MarshalTo(w *wire.Writer) error {
	for i := range v {
		if err := v[i].MarshalTo(w); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalFrom reads variables until the reader is exhausted. A variable
// list is always the last element of a pdu payload.
func (v *Variables) UnmarshalFrom(r *wire.Reader) error {
	*v = (*v)[:0]
	for r.Remaining() > 0 {
		variable := Variable{}
		if err := variable.UnmarshalFrom(r); err != nil {
			return err
		}
		*v = append(*v, variable)
	}
	return nil
}

func (v Variables) String() string {
	parts := make([]string, len(v))
	for index, variable := range v {
		parts[index] = variable.String()
	}
	return "[variables " + strings.Join(parts, ", ") + "]"
}
