// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"fmt"
	"time"

	"github.com/agentx-go/agentx/wire"
)

// Timeout carries the session timeout and registration priority used by the
// open, register and unregister packets.
type Timeout struct {
	Duration time.Duration
	Priority byte
}

// timeoutByte converts a duration to the single wire octet of whole
// seconds, failing if it does not fit.
func timeoutByte(d time.Duration) (byte, error) {
	secs := int64(d / time.Second)
	if secs < 0 || secs > 0xff {
		return 0, fmt.Errorf("%w: timeout of %v does not fit one octet", ErrEncode, d)
	}
	return byte(secs), nil
}

// writeUpperBound writes the optional upper bound of a registration range.
func writeUpperBound(w *wire.Writer, rangeSubid byte, upperBound uint32) {
	if rangeSubid != 0 {
		w.WriteUint32(upperBound)
	}
}

// readUpperBound reads the optional upper bound of a registration range.
func readUpperBound(r *wire.Reader, rangeSubid byte) (uint32, error) {
	if rangeSubid == 0 {
		return 0, nil
	}
	return r.ReadUint32()
}
