// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"errors"
	"fmt"

	"github.com/agentx-go/agentx/wire"
)

// Packet is the payload of a single pdu.
type Packet interface {
	// Type returns the pdu packet type.
	Type() Type

	// MarshalTo writes the payload to the provided writer.
	MarshalTo(w *wire.Writer) error

	// UnmarshalFrom sets the payload from the provided reader, which is
	// scoped to exactly the declared payload length. The header flags are
	// needed to know whether a non-default context precedes the payload.
	UnmarshalFrom(r *wire.Reader, flags Flags) error
}

// HeaderPacket defines a container structure for a header and a packet.
type HeaderPacket struct {
	Header *Header
	Packet Packet
}

// MarshalBinary returns the pdu packet as a slice of bytes. The payload is
// serialized first so the header carries its exact encoded length; version,
// type, payload length and the non-default context flag are derived from
// the packet, everything else is taken from the header as provided.
func (hp *HeaderPacket) MarshalBinary() ([]byte, error) {
	hp.Header.Flags &^= FlagNonDefaultContext
	if cp, ok := hp.Packet.(contextPacket); ok && cp.contextRef() != nil {
		hp.Header.Flags |= FlagNonDefaultContext
	}

	payload := wire.NewWriter(hp.Header.ByteOrder())
	if err := hp.Packet.MarshalTo(payload); err != nil {
		return nil, err
	}

	hp.Header.Version = Version
	hp.Header.Type = hp.Packet.Type()
	hp.Header.PayloadLength = uint32(payload.Len())

	headerBytes, err := hp.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, HeaderSize+payload.Len())
	result = append(result, headerBytes...)
	return append(result, payload.Bytes()...), nil
}

// Decode parses a single message from the front of data and returns it
// together with the number of bytes consumed, so a caller streaming from a
// transport knows where the next message begins. It fails with ErrTruncated
// while fewer bytes are available than the message requires; any other
// error means the stream is desynchronized and cannot be recovered.
func Decode(data []byte) (*HeaderPacket, int, error) {
	header := &Header{}
	if err := header.UnmarshalBinary(data); err != nil {
		return nil, 0, err
	}

	total := HeaderSize + int(header.PayloadLength)
	if len(data) < total {
		return nil, 0, ErrTruncated
	}

	packet := packetForType(header.Type)
	r := wire.NewReader(data[HeaderSize:total], header.ByteOrder())
	if err := packet.UnmarshalFrom(r, header.Flags); err != nil {
		// The payload is fully present here; an element running out of
		// bytes means it overruns the declared payload length, which no
		// amount of further input can repair.
		if errors.Is(err, ErrTruncated) {
			err = fmt.Errorf("%w: %s cut short after %d of %d payload bytes",
				ErrPayloadOverrun, header.Type, r.Consumed(), header.PayloadLength)
		}
		return nil, 0, err
	}
	if r.Remaining() != 0 {
		return nil, 0, fmt.Errorf("%w: %d after %s", ErrTrailingBytes, r.Remaining(), header.Type)
	}

	return &HeaderPacket{Header: header, Packet: packet}, total, nil
}

// packetForType returns an empty packet for the provided type. The type has
// been validated by the header codec.
func packetForType(t Type) Packet {
	switch t {
	case TypeOpen:
		return &Open{}
	case TypeClose:
		return &Close{}
	case TypeRegister:
		return &Register{}
	case TypeUnregister:
		return &Unregister{}
	case TypeGet:
		return &Get{}
	case TypeGetNext:
		return &GetNext{}
	case TypeGetBulk:
		return &GetBulk{}
	case TypeTestSet:
		return &TestSet{}
	case TypeCommitSet:
		return &CommitSet{}
	case TypeUndoSet:
		return &UndoSet{}
	case TypeCleanupSet:
		return &CleanupSet{}
	case TypeNotify:
		return &Notify{}
	case TypePing:
		return &Ping{}
	case TypeIndexAllocate:
		return &IndexAllocate{}
	case TypeIndexDeallocate:
		return &IndexDeallocate{}
	case TypeAddAgentCaps:
		return &AddAgentCaps{}
	case TypeRemoveAgentCaps:
		return &RemoveAgentCaps{}
	case TypeResponse:
		return &Response{}
	}
	panic("unreachable: " + t.String())
}

func (hp *HeaderPacket) String() string {
	return fmt.Sprintf("[head %v, body %v]", hp.Header, hp.Packet)
}
