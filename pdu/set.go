// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"github.com/agentx-go/agentx/wire"
)

// The remaining phases of a set transaction carry no payload beyond the
// header.

// CommitSet defines the pdu commit-set packet.
type CommitSet struct{}

// Type returns the pdu packet type.
func (c *CommitSet) Type() Type {
	return TypeCommitSet
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (c *CommitSet) MarshalTo(w *wire.Writer) error {
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (c *CommitSet) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	return nil
}

// UndoSet defines the pdu undo-set packet.
type UndoSet struct{}

// Type returns the pdu packet type.
func (u *UndoSet) Type() Type {
	return TypeUndoSet
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (u *UndoSet) MarshalTo(w *wire.Writer) error {
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (u *UndoSet) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	return nil
}

// CleanupSet defines the pdu cleanup-set packet.
type CleanupSet struct{}

// Type returns the pdu packet type.
func (c *CleanupSet) Type() Type {
	return TypeCleanupSet
}

// MarshalTo writes the pdu packet payload to the provided writer.
func (c *CleanupSet) MarshalTo(w *wire.Writer) error {
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (c *CleanupSet) UnmarshalFrom(r *wire.Reader, flags Flags) error {
	return nil
}
