// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"fmt"
	"math"
	"net"
	"time"

	"github.com/agentx-go/agentx/value"
	"github.com/agentx-go/agentx/wire"
)

// Variable defines the pdu varbind packet: a type tag, a name oid and a
// value whose encoding is dispatched by the tag. The Go representation of
// the value depends on the type:
//
//	VariableTypeInteger           int32
//	VariableTypeOctetString       string
//	VariableTypeObjectIdentifier  value.OID (string accepted on encode)
//	VariableTypeIPAddress         net.IP
//	VariableTypeCounter32         uint32
//	VariableTypeGauge32           uint32
//	VariableTypeTimeTicks         time.Duration
//	VariableTypeOpaque            []byte
//	VariableTypeCounter64         uint64
//
// Null, NoSuchObject, NoSuchInstance and EndOfMIBView carry no value.
type Variable struct {
	Type  VariableType
	Name  ObjectIdentifier
	Value interface{}
}

// Set sets the variable.
func (v *Variable) Set(oid value.OID, t VariableType, val interface{}) {
	v.Name.SetIdentifier(oid)
	v.Type = t
	v.Value = val
}

// MarshalTo writes the variable to the provided writer. It fails with
// ErrInvalidVariable if the value does not match the type tag.
func (v *Variable) MarshalTo(w *wire.Writer) error {
	w.WriteUint16(uint16(v.Type))
	w.WriteUint16(0)

	if err := v.Name.MarshalTo(w); err != nil {
		return err
	}

	switch v.Type {
	case VariableTypeInteger:
		val, ok := v.Value.(int32)
		if !ok {
			return invalidVariable(v)
		}
		w.WriteUint32(uint32(val))
	case VariableTypeOctetString:
		text, ok := v.Value.(string)
		if !ok {
			return invalidVariable(v)
		}
		os := OctetString{Text: text}
		os.MarshalTo(w)
	case VariableTypeNull, VariableTypeNoSuchObject, VariableTypeNoSuchInstance, VariableTypeEndOfMIBView:
		// no payload
	case VariableTypeObjectIdentifier:
		oid := ObjectIdentifier{}
		switch val := v.Value.(type) {
		case value.OID:
			oid.SetIdentifier(val)
		case string:
			parsed, err := value.ParseOID(val)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidVariable, err)
			}
			oid.SetIdentifier(parsed)
		default:
			return invalidVariable(v)
		}
		if err := oid.MarshalTo(w); err != nil {
			return err
		}
	case VariableTypeIPAddress:
		ip, ok := v.Value.(net.IP)
		if !ok {
			return invalidVariable(v)
		}
		if ip4 := ip.To4(); ip4 != nil {
			ip = ip4
		}
		os := OctetString{Text: string(ip)}
		os.MarshalTo(w)
	case VariableTypeCounter32, VariableTypeGauge32:
		val, ok := v.Value.(uint32)
		if !ok {
			return invalidVariable(v)
		}
		w.WriteUint32(val)
	case VariableTypeTimeTicks:
		val, ok := v.Value.(time.Duration)
		if !ok {
			return invalidVariable(v)
		}
		ticks, err := durationToTicks(val)
		if err != nil {
			return err
		}
		w.WriteUint32(ticks)
	case VariableTypeOpaque:
		data, ok := v.Value.([]byte)
		if !ok {
			return invalidVariable(v)
		}
		os := OctetString{Text: string(data)}
		os.MarshalTo(w)
	case VariableTypeCounter64:
		val, ok := v.Value.(uint64)
		if !ok {
			return invalidVariable(v)
		}
		w.WriteUint64(val)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariableType, uint16(v.Type))
	}

	return nil
}

// UnmarshalFrom sets the packet structure from the provided reader.
func (v *Variable) UnmarshalFrom(r *wire.Reader) error {
	ty, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if err := r.Skip(2); err != nil { // reserved
		return err
	}
	v.Type = VariableType(ty)

	if err := v.Name.UnmarshalFrom(r); err != nil {
		return err
	}

	switch v.Type {
	case VariableTypeInteger:
		val, err := r.ReadUint32()
		if err != nil {
			return err
		}
		v.Value = int32(val)
	case VariableTypeOctetString:
		os := OctetString{}
		if err := os.UnmarshalFrom(r); err != nil {
			return err
		}
		v.Value = os.Text
	case VariableTypeNull, VariableTypeNoSuchObject, VariableTypeNoSuchInstance, VariableTypeEndOfMIBView:
		v.Value = nil
	case VariableTypeObjectIdentifier:
		oid := ObjectIdentifier{}
		if err := oid.UnmarshalFrom(r); err != nil {
			return err
		}
		v.Value = oid.GetIdentifier()
	case VariableTypeIPAddress:
		os := OctetString{}
		if err := os.UnmarshalFrom(r); err != nil {
			return err
		}
		v.Value = net.IP(os.Text)
	case VariableTypeCounter32, VariableTypeGauge32:
		val, err := r.ReadUint32()
		if err != nil {
			return err
		}
		v.Value = val
	case VariableTypeTimeTicks:
		ticks, err := r.ReadUint32()
		if err != nil {
			return err
		}
		v.Value = ticksToDuration(ticks)
	case VariableTypeOpaque:
		os := OctetString{}
		if err := os.UnmarshalFrom(r); err != nil {
			return err
		}
		v.Value = []byte(os.Text)
	case VariableTypeCounter64:
		val, err := r.ReadUint64()
		if err != nil {
			return err
		}
		v.Value = val
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariableType, ty)
	}

	return nil
}

func (v *Variable) String() string {
	return fmt.Sprintf("(variable %s = %v)", v.Type, v.Value)
}

func invalidVariable(v *Variable) error {
	return fmt.Errorf("%w: %s carries %T", ErrInvalidVariable, v.Type, v.Value)
}

// Time ticks are hundredths of a second on the wire.

func durationToTicks(d time.Duration) (uint32, error) {
	ticks := d / (10 * time.Millisecond)
	if ticks < 0 || ticks > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v does not fit 32-bit time ticks", ErrEncode, d)
	}
	return uint32(ticks), nil
}

func ticksToDuration(ticks uint32) time.Duration {
	return time.Duration(ticks) * 10 * time.Millisecond
}
