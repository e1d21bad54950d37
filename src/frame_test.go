package b2brec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrameHeader(t *testing.T) {
	var prn, msg_type, err = parse_frame_header(testFrameBytes(testDecodedPRN10Hex))
	require.NoError(t, err)
	assert.Equal(t, uint8(10), prn)
	assert.Equal(t, uint8(MSG_TYPE_EPH), msg_type)

	prn, msg_type, err = parse_frame_header(testFrameBytes(testDecodedPRN12Hex))
	require.NoError(t, err)
	assert.Equal(t, uint8(12), prn)
	assert.Equal(t, uint8(MSG_TYPE_EPH), msg_type)
}

func TestParseFrameHeaderBitLayout(t *testing.T) {
	// PRN 45 (101101), type 30 (011110):
	// octet 0 = 101101 01, octet 1 = 1110 0000
	var frame = make([]byte, DECODED_FRAME_LEN)
	frame[0] = 0xB5
	frame[1] = 0xE0

	var prn, msg_type, err = parse_frame_header(frame)
	require.NoError(t, err)
	assert.Equal(t, uint8(45), prn)
	assert.Equal(t, uint8(MSG_TYPE_CLOCK), msg_type)
}

func TestParseFrameHeaderRejectsBadType(t *testing.T) {
	var frame = make([]byte, DECODED_FRAME_LEN)

	// All message types other than 10, 30 and 40 are invalid.
	for mt := 0; mt < 64; mt++ {
		frame[0] = byte(10<<2) | byte(mt>>4)
		frame[1] = byte(mt&0x0F) << 4

		var _, got, err = parse_frame_header(frame)
		switch mt {
		case MSG_TYPE_EPH, MSG_TYPE_CLOCK, MSG_TYPE_ALMANAC:
			require.NoError(t, err)
			assert.Equal(t, uint8(mt), got)
		default:
			assert.Error(t, err, "msg type %d", mt)
		}
	}
}

func TestParseFrameHeaderTooShort(t *testing.T) {
	var _, _, err = parse_frame_header([]byte{0x28, 0xA0})
	assert.Error(t, err)
}
