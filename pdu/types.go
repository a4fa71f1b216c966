// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"fmt"
)

// Type defines the pdu packet type.
type Type byte

// The pdu packet types.
const (
	TypeOpen            Type = 1
	TypeClose           Type = 2
	TypeRegister        Type = 3
	TypeUnregister      Type = 4
	TypeGet             Type = 5
	TypeGetNext         Type = 6
	TypeGetBulk         Type = 7
	TypeTestSet         Type = 8
	TypeCommitSet       Type = 9
	TypeUndoSet         Type = 10
	TypeCleanupSet      Type = 11
	TypeNotify          Type = 12
	TypePing            Type = 13
	TypeIndexAllocate   Type = 14
	TypeIndexDeallocate Type = 15
	TypeAddAgentCaps    Type = 16
	TypeRemoveAgentCaps Type = 17
	TypeResponse        Type = 18
)

var typeNames = map[Type]string{
	TypeOpen:            "open",
	TypeClose:           "close",
	TypeRegister:        "register",
	TypeUnregister:      "unregister",
	TypeGet:             "get",
	TypeGetNext:         "get-next",
	TypeGetBulk:         "get-bulk",
	TypeTestSet:         "test-set",
	TypeCommitSet:       "commit-set",
	TypeUndoSet:         "undo-set",
	TypeCleanupSet:      "cleanup-set",
	TypeNotify:          "notify",
	TypePing:            "ping",
	TypeIndexAllocate:   "index-allocate",
	TypeIndexDeallocate: "index-deallocate",
	TypeAddAgentCaps:    "add-agent-caps",
	TypeRemoveAgentCaps: "remove-agent-caps",
	TypeResponse:        "response",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown type %d", byte(t))
}

// Flags defines the pdu header flags.
type Flags byte

// The pdu header flags. FlagNetworkByteOrder selects big-endian encoding
// for every multi-byte field of the message it is set on; the other flags
// qualify individual packet types.
const (
	FlagInstanceRegistration Flags = 1 << 0
	FlagNewIndex             Flags = 1 << 1
	FlagAnyIndex             Flags = 1 << 2
	FlagNonDefaultContext    Flags = 1 << 3
	FlagNetworkByteOrder     Flags = 1 << 4
)

// VariableType defines the type of a varbind value.
type VariableType uint16

// The varbind value types.
const (
	VariableTypeInteger          VariableType = 2
	VariableTypeOctetString      VariableType = 4
	VariableTypeNull             VariableType = 5
	VariableTypeObjectIdentifier VariableType = 6
	VariableTypeIPAddress        VariableType = 64
	VariableTypeCounter32        VariableType = 65
	VariableTypeGauge32          VariableType = 66
	VariableTypeTimeTicks        VariableType = 67
	VariableTypeOpaque           VariableType = 68
	VariableTypeCounter64        VariableType = 70
	VariableTypeNoSuchObject     VariableType = 128
	VariableTypeNoSuchInstance   VariableType = 129
	VariableTypeEndOfMIBView     VariableType = 130
)

var variableTypeNames = map[VariableType]string{
	VariableTypeInteger:          "integer",
	VariableTypeOctetString:      "octet-string",
	VariableTypeNull:             "null",
	VariableTypeObjectIdentifier: "object-identifier",
	VariableTypeIPAddress:        "ip-address",
	VariableTypeCounter32:        "counter32",
	VariableTypeGauge32:          "gauge32",
	VariableTypeTimeTicks:        "time-ticks",
	VariableTypeOpaque:           "opaque",
	VariableTypeCounter64:        "counter64",
	VariableTypeNoSuchObject:     "no-such-object",
	VariableTypeNoSuchInstance:   "no-such-instance",
	VariableTypeEndOfMIBView:     "end-of-mib-view",
}

func (vt VariableType) String() string {
	if name, ok := variableTypeNames[vt]; ok {
		return name
	}
	return fmt.Sprintf("unknown variable type %d", uint16(vt))
}

// Reason defines the reason of a close packet.
type Reason byte

// The close reasons.
const (
	ReasonOther         Reason = 1
	ReasonParseError    Reason = 2
	ReasonProtocolError Reason = 3
	ReasonTimeouts      Reason = 4
	ReasonShutdown      Reason = 5
	ReasonByManager     Reason = 6
)

var reasonNames = map[Reason]string{
	ReasonOther:         "other",
	ReasonParseError:    "parse-error",
	ReasonProtocolError: "protocol-error",
	ReasonTimeouts:      "timeouts",
	ReasonShutdown:      "shutdown",
	ReasonByManager:     "by-manager",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown reason %d", byte(r))
}

// Error defines the error status of a response packet.
type Error uint16

// The response error statuses.
const (
	ErrorNone                  Error = 0
	ErrorOpenFailed            Error = 256
	ErrorNotOpen               Error = 257
	ErrorIndexWrongType        Error = 258
	ErrorIndexAlreadyAlloc     Error = 259
	ErrorIndexNoneAvailable    Error = 260
	ErrorIndexNotAllocated     Error = 261
	ErrorUnsupportedContext    Error = 262
	ErrorDuplicateRegistration Error = 263
	ErrorUnknownRegistration   Error = 264
	ErrorUnknownAgentCaps      Error = 265
	ErrorParse                 Error = 266
	ErrorRequestDenied         Error = 267
	ErrorProcessing            Error = 268
)

var errorNames = map[Error]string{
	ErrorNone:                  "no error",
	ErrorOpenFailed:            "open failed",
	ErrorNotOpen:               "not open",
	ErrorIndexWrongType:        "index wrong type",
	ErrorIndexAlreadyAlloc:     "index already allocated",
	ErrorIndexNoneAvailable:    "index none available",
	ErrorIndexNotAllocated:     "index not allocated",
	ErrorUnsupportedContext:    "unsupported context",
	ErrorDuplicateRegistration: "duplicate registration",
	ErrorUnknownRegistration:   "unknown registration",
	ErrorUnknownAgentCaps:      "unknown agent capabilities",
	ErrorParse:                 "parse error",
	ErrorRequestDenied:         "request denied",
	ErrorProcessing:            "processing error",
}

func (e Error) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown error %d", uint16(e))
}
