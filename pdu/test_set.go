// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// TestSet defines the pdu test-set packet, the first phase of a set
// transaction.
type TestSet struct {
	Context   *Context
	Variables Variables
}

// Type returns the pdu packet type.
func (t *TestSet) Type() Type {
	return TypeTestSet
}

func (t *TestSet) contextRef() *Context {
	return t.Context
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (t *TestSet) MarshalTo(w *wire.Writer) error {
	writeContext(w, t.Context)
	return t.Variables.MarshalTo(w)
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (t *TestSet) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	context, err := readContext(r, flags)
	if err != nil {
		return err
	}
	t.Context = context
	return t.Variables.UnmarshalFrom(r)
}
