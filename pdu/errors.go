// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"errors"

	"github.com/agentx-go/agentx/wire"
)

// ErrTruncated is returned when a message or field declares more bytes than
// are available. A caller streaming from a transport may retry once more
// bytes arrived; every other decode error is fatal for the stream.
var ErrTruncated = wire.ErrTruncated

var (
	// ErrUnsupportedVersion is returned for a header version other than 1.
	ErrUnsupportedVersion = errors.New("unsupported protocol version")

	// ErrUnknownType is returned for a header with an unknown pdu type.
	ErrUnknownType = errors.New("unknown pdu type")

	// ErrUnknownVariableType is returned for a varbind with an unknown
	// type tag.
	ErrUnknownVariableType = errors.New("unknown variable type")

	// ErrMalformedOID is returned for an object identifier whose prefix
	// and subidentifier count cannot form a valid identifier.
	ErrMalformedOID = errors.New("malformed object identifier")

	// ErrTrailingBytes is returned when a payload holds bytes after its
	// last field.
	ErrTrailingBytes = errors.New("trailing bytes")

	// ErrPayloadOverrun is returned when a payload element declares more
	// bytes than the payload length leaves for it. Unlike ErrTruncated it
	// is fatal: the message is fully present, more bytes cannot help.
	ErrPayloadOverrun = errors.New("payload overrun")

	// ErrInvalidVariable is returned when a varbind value does not match
	// its type tag.
	ErrInvalidVariable = errors.New("invalid variable")

	// ErrEncode is returned when a value cannot be represented on the
	// wire, such as an oid with more than 255 subidentifiers.
	ErrEncode = errors.New("unencodable value")
)
