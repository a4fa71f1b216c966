// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"fmt"

	"github.com/agentx-go/agentx/value"
	"github.com/agentx-go/agentx/wire"
)

// internetPrefix is the OID prefix 1.3.6.1 that the wire format compresses
// into a single prefix octet.
var internetPrefix = [4]uint32{1, 3, 6, 1}

// ObjectIdentifier defines the pdu object identifier packet. The
// subidentifiers are kept in their uncompressed form; prefix compression is
// applied on encode and undone on decode. Include is meaningful only when
// the identifier is the start of a search range.
type ObjectIdentifier struct {
	Include        bool
	Subidentifiers []uint32
}

// SetIdentifier sets the subidentifiers from the provided oid.
func (o *ObjectIdentifier) SetIdentifier(oid value.OID) {
	o.Subidentifiers = make([]uint32, len(oid))
	copy(o.Subidentifiers, oid)
}

// GetIdentifier returns the identifier as an oid.
func (o *ObjectIdentifier) GetIdentifier() value.OID {
	return value.OID(o.Subidentifiers)
}

// IsNull returns true for the zero-length "null" object identifier.
func (o *ObjectIdentifier) IsNull() bool {
	return len(o.Subidentifiers) == 0
}

// compressOID splits an oid into the wire prefix octet and the remaining
// subidentifiers. An oid qualifies for compression if it has at least five
// subidentifiers, starts with 1.3.6.1 and its fifth subidentifier fits a
// single non-zero byte.
func compressOID(subids []uint32) (prefix uint8, remainder []uint32) {
	if len(subids) < 5 {
		return 0, subids
	}
	for i, sub := range internetPrefix {
		if subids[i] != sub {
			return 0, subids
		}
	}
	if subids[4] == 0 || subids[4] > 0xff {
		return 0, subids
	}
	return uint8(subids[4]), subids[5:]
}

// decompressOID reverses compressOID.
func decompressOID(prefix uint8, subids []uint32) []uint32 {
	if prefix == 0 {
		return subids
	}
	result := make([]uint32, 0, 5+len(subids))
	result = append(result, internetPrefix[:]...)
	result = append(result, uint32(prefix))
	return append(result, subids...)
}

// MarshalTo writes the object identifier to the provided writer.
func (o *ObjectIdentifier) MarshalTo(w *wire.Writer) error {
	if len(o.Subidentifiers) > 0xff {
		return fmt.Errorf("%w: object identifier with %d subidentifiers", ErrEncode, len(o.Subidentifiers))
	}

	prefix, subids := compressOID(o.Subidentifiers)

	include := uint8(0)
	if o.Include {
		include = 1
	}

	w.WriteUint8(uint8(len(subids)))
	w.WriteUint8(prefix)
	w.WriteUint8(include)
	w.WriteUint8(0)
	for _, sub := range subids {
		w.WriteUint32(sub)
	}
	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (o *ObjectIdentifier) UnmarshalFrom(r *wire.Reader) error {
	header, err := r.ReadBytes(4)
	if err != nil {
		return err
	}
	count, prefix, include := header[0], header[1], header[2]
	// header[3] is reserved and ignored

	if prefix != 0 && int(count)+5 > 0xff {
		return fmt.Errorf("%w: prefix %d with %d subidentifiers", ErrMalformedOID, prefix, count)
	}

	subids := make([]uint32, count)
	for i := range subids {
		if subids[i], err = r.ReadUint32(); err != nil {
			return err
		}
	}

	o.Include = include != 0
	o.Subidentifiers = decompressOID(prefix, subids)
	return nil
}

func (o ObjectIdentifier) String() string {
	return o.GetIdentifier().String()
}
