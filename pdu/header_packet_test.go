// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package pdu

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-go/agentx/value"
)

func newContext(name string) *Context {
	context := &Context{}
	context.Text = name
	return context
}

func testVariables() Variables {
	variables := Variables{}
	variables.Add(value.MustParseOID("1.3.6.1.4.1.45995.1"), VariableTypeOctetString, "text")
	variables.Add(value.MustParseOID("1.3.6.1.4.1.45995.2"), VariableTypeCounter64, uint64(5))
	return variables
}

func testRanges() Ranges {
	var sr Range
	sr.From.SetIdentifier(value.MustParseOID("1.3.6.1.2.1.1.3.0"))
	sr.From.Include = true
	sr.To.SetIdentifier(value.MustParseOID("1.3.6.1.2.2"))
	return Ranges{sr}
}

func TestHeaderPacketRoundTrip(t *testing.T) {
	open := &Open{}
	open.Timeout.Duration = 60 * time.Second
	open.ID.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995"))
	open.Description.Text = "test agent"

	register := &Register{Context: newContext("backup"), RangeSubid: 7, UpperBound: 27}
	register.Timeout.Duration = 30 * time.Second
	register.Timeout.Priority = 127
	register.Subtree.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995"))

	unregister := &Unregister{RangeSubid: 7, UpperBound: 31}
	unregister.Timeout.Priority = 64
	unregister.Subtree.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995"))

	addCaps := &AddAgentCaps{}
	addCaps.ID.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995.9"))
	addCaps.Description.Text = "capabilities"

	removeCaps := &RemoveAgentCaps{}
	removeCaps.ID.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995.9"))

	response := &Response{UpTime: 1234560 * time.Millisecond, Error: ErrorNotOpen, Index: 2, Variables: testVariables()}

	packets := []Packet{
		open,
		&Close{Reason: ReasonShutdown},
		register,
		unregister,
		&Get{SearchRanges: testRanges()},
		&GetNext{Context: newContext("vacation"), SearchRanges: testRanges()},
		&GetBulk{NonRepeaters: 1, MaxRepetitions: 5, SearchRanges: testRanges()},
		&TestSet{Variables: testVariables()},
		&CommitSet{},
		&UndoSet{},
		&CleanupSet{},
		&Notify{Variables: testVariables()},
		&Ping{},
		&Ping{Context: newContext("vacation")},
		&IndexAllocate{Variables: testVariables()},
		&IndexDeallocate{Variables: testVariables()},
		addCaps,
		removeCaps,
		response,
	}

	for _, orderFlags := range []Flags{0, FlagNetworkByteOrder} {
		for _, packet := range packets {
			t.Run(packet.Type().String(), func(t *testing.T) {
				hp := &HeaderPacket{
					Header: &Header{
						Flags:         orderFlags,
						SessionID:     7,
						TransactionID: 8,
						PacketID:      9,
					},
					Packet: packet,
				}

				data, err := hp.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, HeaderSize+int(hp.Header.PayloadLength), len(data))

				decoded, consumed, err := Decode(data)
				require.NoError(t, err)
				assert.Equal(t, len(data), consumed)

				assert.Equal(t, byte(Version), decoded.Header.Version)
				assert.Equal(t, packet.Type(), decoded.Header.Type)
				assert.Equal(t, orderFlags, decoded.Header.Flags&FlagNetworkByteOrder)
				assert.Equal(t, uint32(7), decoded.Header.SessionID)
				assert.Equal(t, uint32(8), decoded.Header.TransactionID)
				assert.Equal(t, uint32(9), decoded.Header.PacketID)

				if diff := cmp.Diff(packet, decoded.Packet, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("packet mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestHeaderPacketContextFlag(t *testing.T) {
	t.Run("Derived", func(t *testing.T) {
		hp := &HeaderPacket{
			Header: &Header{},
			Packet: &Get{Context: newContext("vacation"), SearchRanges: testRanges()},
		}
		data, err := hp.MarshalBinary()
		require.NoError(t, err)
		assert.NotZero(t, Flags(data[2])&FlagNonDefaultContext)

		decoded, _, err := Decode(data)
		require.NoError(t, err)
		get := decoded.Packet.(*Get)
		require.NotNil(t, get.Context)
		assert.Equal(t, "vacation", get.Context.Text)
	})

	t.Run("Cleared", func(t *testing.T) {
		// A stale context flag on the header must not survive a packet
		// without a context.
		hp := &HeaderPacket{
			Header: &Header{Flags: FlagNonDefaultContext},
			Packet: &Get{SearchRanges: testRanges()},
		}
		data, err := hp.MarshalBinary()
		require.NoError(t, err)
		assert.Zero(t, Flags(data[2])&FlagNonDefaultContext)

		decoded, _, err := Decode(data)
		require.NoError(t, err)
		assert.Nil(t, decoded.Packet.(*Get).Context)
	})
}

func TestDecodeSearchRangeScenario(t *testing.T) {
	get := &Get{}
	var sr Range
	sr.From.SetIdentifier(value.MustParseOID("1.3.6.1.2.1.1.3.0"))
	sr.From.Include = true
	get.SearchRanges = Ranges{sr}

	hp := &HeaderPacket{Header: &Header{}, Packet: get}
	data, err := hp.MarshalBinary()
	require.NoError(t, err)

	decoded, _, err := Decode(data)
	require.NoError(t, err)

	ranges := decoded.Packet.(*Get).SearchRanges
	require.Len(t, ranges, 1)
	assert.Equal(t, "1.3.6.1.2.1.1.3.0", ranges[0].From.GetIdentifier().String())
	assert.True(t, ranges[0].From.Include)
	assert.True(t, ranges[0].To.IsNull(), "null upper bound")
	assert.False(t, ranges[0].To.Include)
}

func TestDecodeResponseUpTime(t *testing.T) {
	response := &Response{UpTime: 123456 * 10 * time.Millisecond}
	response.Variables.Add(value.MustParseOID("1.3.6.1.2.1.1.3.0"), VariableTypeTimeTicks, 123456*10*time.Millisecond)

	hp := &HeaderPacket{Header: &Header{}, Packet: response}
	data, err := hp.MarshalBinary()
	require.NoError(t, err)

	decoded, _, err := Decode(data)
	require.NoError(t, err)

	got := decoded.Packet.(*Response)
	assert.Equal(t, 123456*10*time.Millisecond, got.UpTime)
	require.Len(t, got.Variables, 1)
	assert.Equal(t, 123456*10*time.Millisecond, got.Variables[0].Value)
}

func TestDecodeTruncated(t *testing.T) {
	hp := &HeaderPacket{Header: &Header{}, Packet: &Notify{Variables: testVariables()}}
	data, err := hp.MarshalBinary()
	require.NoError(t, err)

	// Every prefix of a valid message is truncated, never malformed.
	for _, n := range []int{0, 1, HeaderSize - 1, HeaderSize, HeaderSize + 3, len(data) - 1} {
		_, consumed, err := Decode(data[:n])
		require.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", n)
		assert.Zero(t, consumed)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	hp := &HeaderPacket{Header: &Header{}, Packet: &Ping{}}
	data, err := hp.MarshalBinary()
	require.NoError(t, err)

	// Grow the declared payload without giving the packet more to say.
	data = append(data, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(data[16:], 4)

	_, _, err = Decode(data)
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestDecodePayloadOverrun(t *testing.T) {
	hp := &HeaderPacket{Header: &Header{}, Packet: &Get{SearchRanges: testRanges()}}
	data, err := hp.MarshalBinary()
	require.NoError(t, err)

	// Shrink the declared payload so the last oid is cut short while every
	// byte of the message is present. Queue a valid message behind it to
	// mirror a streaming buffer that could never make progress if this were
	// reported as truncation.
	binary.LittleEndian.PutUint32(data[16:], hp.Header.PayloadLength-4)
	next, err := (&HeaderPacket{Header: &Header{}, Packet: &Ping{}}).MarshalBinary()
	require.NoError(t, err)
	data = append(data, next...)

	_, consumed, err := Decode(data)
	require.ErrorIs(t, err, ErrPayloadOverrun)
	require.NotErrorIs(t, err, ErrTruncated)
	assert.Zero(t, consumed)
}

func TestDecodeStream(t *testing.T) {
	first := &HeaderPacket{Header: &Header{PacketID: 1}, Packet: &Ping{}}
	second := &HeaderPacket{Header: &Header{PacketID: 2, Flags: FlagNetworkByteOrder}, Packet: &Get{SearchRanges: testRanges()}}

	firstData, err := first.MarshalBinary()
	require.NoError(t, err)
	secondData, err := second.MarshalBinary()
	require.NoError(t, err)

	stream := append(append([]byte{}, firstData...), secondData...)

	decoded, consumed, err := Decode(stream)
	require.NoError(t, err)
	assert.Equal(t, len(firstData), consumed)
	assert.Equal(t, uint32(1), decoded.Header.PacketID)

	stream = stream[consumed:]
	decoded, consumed, err = Decode(stream)
	require.NoError(t, err)
	assert.Equal(t, len(secondData), consumed)
	assert.Equal(t, uint32(2), decoded.Header.PacketID)
	assert.Equal(t, TypeGet, decoded.Header.Type)

	stream = stream[consumed:]
	assert.Empty(t, stream)
}

func TestEncodeTimeoutOverflow(t *testing.T) {
	open := &Open{}
	open.Timeout.Duration = 300 * time.Second
	open.ID.SetIdentifier(value.MustParseOID("1.3.6.1.4.1.45995"))

	hp := &HeaderPacket{Header: &Header{}, Packet: open}
	_, err := hp.MarshalBinary()
	require.ErrorIs(t, err, ErrEncode)
}
