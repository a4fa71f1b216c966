// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package agentx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/agentx-go/agentx/pdu"
	"github.com/agentx-go/agentx/value"
)

// Client defines an agentx client.
type Client struct {
	logger      *slog.Logger
	network     string
	address     string
	options     dialOptions
	conn        net.Conn
	requestChan chan *request
	sessions    map[uint32]*Session
}

type request struct {
	headerPacket *pdu.HeaderPacket
	responseChan chan *pdu.HeaderPacket
}

// Dial connects to the provided agentX endpoint.
func Dial(network, address string, opts ...DialOption) (*Client, error) {
	options := dialOptions{}
	for _, dialOption := range opts {
		dialOption(&options)
	}

	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, address, err)
	}
	c := &Client{
		logger:      options.logger,
		network:     network,
		address:     address,
		options:     options,
		conn:        conn,
		requestChan: make(chan *request),
		sessions:    make(map[uint32]*Session),
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	tx := c.runTransmitter()
	rx := c.runReceiver()
	c.runDispatcher(tx, rx)

	return c, nil
}

// Close tears down the client.
func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}

// Session sets up a new session.
func (c *Client) Session(nameOID value.OID, name string, handler Handler) (*Session, error) {
	s, err := openSession(c, nameOID, name, handler)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	c.sessions[s.ID()] = s
	return s, nil
}

// newHeader returns a header for a self-originated message, carrying the
// configured outbound byte order.
func (c *Client) newHeader(t pdu.Type) *pdu.Header {
	return &pdu.Header{Type: t, Flags: c.options.headerFlags()}
}

func (c *Client) runTransmitter() chan *pdu.HeaderPacket {
	tx := make(chan *pdu.HeaderPacket)

	go func() {
		for headerPacket := range tx {
			headerPacketBytes, err := headerPacket.MarshalBinary()
			if err != nil {
				c.logger.Error("packet marshal error",
					getPacketHeaderSlogAttrs(headerPacket.Header),
					slog.Any("err", err),
				)
				continue
			}
			if _, err := c.conn.Write(headerPacketBytes); err != nil {
				c.logger.Error("packet write error",
					getPacketHeaderSlogAttrs(headerPacket.Header),
					slog.Any("err", err),
				)
				continue
			}
			c.logger.Debug("packet sent",
				getPacketHeaderSlogAttrs(headerPacket.Header),
			)
		}
	}()

	return tx
}

// runReceiver accumulates bytes from the connection and decodes messages
// off the front of the buffer. pdu.ErrTruncated means an incomplete message
// is sitting in the buffer and more bytes are needed; every other decode
// error leaves the stream desynchronized, so the buffered bytes are
// discarded.
func (c *Client) runReceiver() chan *pdu.HeaderPacket {
	rx := make(chan *pdu.HeaderPacket)

	go func() {
		var buffer []byte

	mainLoop:
		for {
			for len(buffer) > 0 {
				headerPacket, consumed, err := pdu.Decode(buffer)
				if errors.Is(err, pdu.ErrTruncated) {
					break
				}
				if err != nil {
					c.logger.Error("packet decode error",
						slog.Any("err", err),
						slog.Int("discarded", len(buffer)),
					)
					buffer = buffer[:0]
					break
				}
				buffer = buffer[consumed:]

				c.logger.Debug("packet received", getPacketHeaderSlogAttrs(headerPacket.Header))
				rx <- headerPacket
			}

			chunk := acquireIOBuf()
			n, err := c.conn.Read(chunk.b)
			if n > 0 {
				buffer = append(buffer, chunk.b[:n]...)
			}
			releaseIOBuf(chunk)
			if err == nil {
				continue mainLoop
			}

			if opErr, ok := err.(*net.OpError); ok && strings.HasSuffix(opErr.Error(), "use of closed network connection") {
				return
			}
			if err != io.EOF {
				c.logger.Error("connection read error", slog.Any("err", err))
				return
			}

			c.logger.Info("lost connection", slog.Duration("re-connect-in", c.options.reconnectInterval))
			buffer = buffer[:0]
		reopenLoop:
			for {
				time.Sleep(c.options.reconnectInterval)
				conn, err := net.Dial(c.network, c.address)
				if err != nil {
					c.logger.Error("re-connect error", slog.Any("err", err))
					continue reopenLoop
				}
				c.conn = conn
				go func() {
					for _, session := range c.sessions {
						delete(c.sessions, session.ID())
						if err := session.reopen(); err != nil {
							c.logger.Error("re-open error",
								getPacketHeaderSlogAttrs(session.openRequestPacket.Header),
								slog.Any("err", err),
							)
							return
						}
						c.sessions[session.ID()] = session
					}
					c.logger.Info("re-connect successful")
				}()
				continue mainLoop
			}
		}
	}()

	return rx
}

func (c *Client) runDispatcher(tx, rx chan *pdu.HeaderPacket) {
	go func() {
		currentPacketID := uint32(0)
		responseChans := make(map[uint32]chan *pdu.HeaderPacket)

		for {
			select {
			case request := <-c.requestChan:
				request.headerPacket.Header.PacketID = currentPacketID
				responseChans[currentPacketID] = request.responseChan
				currentPacketID++
				tx <- request.headerPacket

			case headerPacket := <-rx:
				if responseChan, ok := responseChans[headerPacket.Header.PacketID]; ok {
					responseChan <- headerPacket
					delete(responseChans, headerPacket.Header.PacketID)
				} else if session, ok := c.sessions[headerPacket.Header.SessionID]; ok {
					tx <- session.handle(headerPacket)
				} else {
					c.logger.Error("got packet without session",
						getPacketHeaderSlogAttrs(headerPacket.Header),
						slog.Int("awaiting_responses", len(responseChans)),
					)
				}
			}
		}
	}()
}

func (c *Client) request(hp *pdu.HeaderPacket) *pdu.HeaderPacket {
	responseChan := make(chan *pdu.HeaderPacket)
	request := acquireRequest()
	request.headerPacket = hp
	request.responseChan = responseChan
	c.requestChan <- request
	headerPacket := <-responseChan
	releaseRequest(request)
	return headerPacket
}

func getPacketHeaderSlogAttrs(header *pdu.Header) slog.Attr {
	return slog.GroupAttrs("packet_header",
		slog.String("packet_type", header.Type.String()),
		slog.Any("session_id", header.SessionID),
		slog.Any("transaction_id", header.TransactionID),
		slog.Any("packet_id", header.PacketID),
		slog.Any("payload_length", header.PayloadLength),
	)
}
