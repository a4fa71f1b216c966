// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize defines the total size of a header packet.
	HeaderSize = 20

	// Version defines the only AgentX protocol version.
	Version = 1
)

// Header defines a pdu packet header. The byte order of every multi-byte
// field after the first four header bytes, including the whole payload, is
// selected by FlagNetworkByteOrder: big-endian if set, little-endian
// otherwise.
type Header struct {
	Version       byte
	Type          Type
	Flags         Flags
	SessionID     uint32
	TransactionID uint32
	PacketID      uint32
	PayloadLength uint32
}

// ByteOrder returns the byte order selected by the header flags.
func (h *Header) ByteOrder() binary.ByteOrder {
	if h.Flags&FlagNetworkByteOrder != 0 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// MarshalBinary returns the pdu header as a slice of bytes.
func (h *Header) MarshalBinary() ([]byte, error) {
	order := h.ByteOrder()

	result := make([]byte, HeaderSize)
	result[0] = h.Version
	result[1] = byte(h.Type)
	result[2] = byte(h.Flags)
	// result[3] is reserved padding byte (0x00)
	order.PutUint32(result[4:], h.SessionID)
	order.PutUint32(result[8:], h.TransactionID)
	order.PutUint32(result[12:], h.PacketID)
	order.PutUint32(result[16:], h.PayloadLength)
	return result, nil
}

// UnmarshalBinary sets the header structure from the provided slice of
// bytes. The first four fields are single bytes and are read before any
// byte order is known; the remaining fields use the order selected by the
// flags byte.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return ErrTruncated
	}

	h.Version, h.Type, h.Flags = data[0], Type(data[1]), Flags(data[2])
	// data[3] is reserved and ignored

	if h.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if _, ok := typeNames[h.Type]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, byte(h.Type))
	}

	order := h.ByteOrder()
	h.SessionID = order.Uint32(data[4:])
	h.TransactionID = order.Uint32(data[8:])
	h.PacketID = order.Uint32(data[12:])
	h.PayloadLength = order.Uint32(data[16:])

	return nil
}

func (h *Header) String() string {
	return "(header " + h.Type.String() + ")"
}
