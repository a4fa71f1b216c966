// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.
//
// Pooling utilities for buffers and request structs.

package agentx

import (
	"sync"
)

const pooledBufCap = 8 << 10 // 8KB default pooled buffer size

var (
	ioBufPool = sync.Pool{
		New: func() any { return &pooledBytes{b: make([]byte, pooledBufCap)} },
	}
	requestPool = sync.Pool{
		New: func() any { return &request{} },
	}
)

type pooledBytes struct {
	b []byte
}

func acquireIOBuf() *pooledBytes {
	return ioBufPool.Get().(*pooledBytes)
}

func releaseIOBuf(p *pooledBytes) {
	// Avoid retaining extremely large buffers in the pool
	if cap(p.b) <= 64<<10 {
		ioBufPool.Put(p)
	}
}

func acquireRequest() *request {
	return requestPool.Get().(*request)
}

func releaseRequest(r *request) {
	r.headerPacket = nil
	r.responseChan = nil
	requestPool.Put(r)
}
