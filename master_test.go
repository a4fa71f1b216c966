// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package agentx_test

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentx-go/agentx/pdu"
)

// testMaster is a minimal in-process master agent. It answers
// administrative packets with empty responses and forwards everything
// else to the test through the responses channel.
type testMaster struct {
	tb        testing.TB
	listener  net.Listener
	responses chan *pdu.HeaderPacket

	mu            sync.Mutex
	conn          net.Conn
	nextSessionID uint32
	packetID      atomic.Uint32
}

func startTestMaster(tb testing.TB) *testMaster {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(tb, err)

	m := &testMaster{
		tb:            tb,
		listener:      listener,
		responses:     make(chan *pdu.HeaderPacket, 16),
		nextSessionID: 1,
	}
	m.packetID.Store(1000)

	go m.acceptLoop()

	tb.Cleanup(func() {
		listener.Close()
		m.mu.Lock()
		if m.conn != nil {
			m.conn.Close()
		}
		m.mu.Unlock()
	})

	return m
}

func (m *testMaster) addr() string {
	return m.listener.Addr().String()
}

func (m *testMaster) acceptLoop() {
	for {
		conn, err := m.listener.Accept()
		if err != nil {
			return
		}
		m.mu.Lock()
		m.conn = conn
		m.mu.Unlock()
		go m.serve(conn)
	}
}

func (m *testMaster) serve(conn net.Conn) {
	var buffer []byte
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buffer = append(buffer, chunk[:n]...)
		}
		for len(buffer) > 0 {
			headerPacket, consumed, decodeErr := pdu.Decode(buffer)
			if errors.Is(decodeErr, pdu.ErrTruncated) {
				break
			}
			if decodeErr != nil {
				m.tb.Errorf("master decode: %v", decodeErr)
				return
			}
			buffer = buffer[consumed:]
			m.dispatch(conn, headerPacket)
		}
		if err != nil {
			return
		}
	}
}

func (m *testMaster) dispatch(conn net.Conn, hp *pdu.HeaderPacket) {
	switch hp.Packet.(type) {
	case *pdu.Response:
		m.responses <- hp
		return
	case *pdu.Open:
		m.mu.Lock()
		sessionID := m.nextSessionID
		m.nextSessionID++
		m.mu.Unlock()
		m.reply(conn, hp, sessionID)
	default:
		m.reply(conn, hp, hp.Header.SessionID)
	}
}

func (m *testMaster) reply(conn net.Conn, request *pdu.HeaderPacket, sessionID uint32) {
	response := &pdu.HeaderPacket{
		Header: &pdu.Header{
			Type:          pdu.TypeResponse,
			SessionID:     sessionID,
			TransactionID: request.Header.TransactionID,
			PacketID:      request.Header.PacketID,
		},
		Packet: &pdu.Response{},
	}
	data, err := response.MarshalBinary()
	require.NoError(m.tb, err)
	_, err = conn.Write(data)
	require.NoError(m.tb, err)
}

// send delivers a master-originated packet to the connected sub-agent.
func (m *testMaster) send(sessionID uint32, packet pdu.Packet) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	require.NotNil(m.tb, conn)

	hp := &pdu.HeaderPacket{
		Header: &pdu.Header{
			Type:      packet.Type(),
			SessionID: sessionID,
			PacketID:  m.packetID.Add(1),
		},
		Packet: packet,
	}
	data, err := hp.MarshalBinary()
	require.NoError(m.tb, err)
	_, err = conn.Write(data)
	require.NoError(m.tb, err)
}

// awaitResponse returns the next response the sub-agent sent for a
// master-originated request.
func (m *testMaster) awaitResponse() *pdu.Response {
	select {
	case hp := <-m.responses:
		response, ok := hp.Packet.(*pdu.Response)
		require.True(m.tb, ok)
		return response
	case <-time.After(5 * time.Second):
		m.tb.Fatal("timed out waiting for response")
		return nil
	}
}
