package b2brec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCRC24QCheckValue(t *testing.T) {
	// Standard CRC-24Q check value.
	assert.Equal(t, uint32(0xCDE703), crc24q_calc([]byte("123456789")))
	assert.Equal(t, uint32(0), crc24q_calc(nil))
	assert.Equal(t, uint32(0), crc24q_calc(make([]byte, 58)))
}

func TestCRC24QAppendProperty(t *testing.T) {
	// Appending the checksum drives the register back to zero.
	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		var crc = crc24q_calc(data)
		var full = append(append([]byte{}, data...),
			byte(crc>>16), byte(crc>>8), byte(crc))

		assert.Equal(t, uint32(0), crc24q_calc(full))
		assert.Less(t, crc, uint32(1<<24))
	})
}

func TestCRC24QCheckFrame(t *testing.T) {
	var frame = testFrameBytes(testDecodedPRN10Hex)
	assert.True(t, crc24q_check(frame))

	// Any corruption of the protected region must be caught.
	var bad = append([]byte{}, frame...)
	bad[10] ^= 0x01
	assert.False(t, crc24q_check(bad))

	// Wrong length is rejected outright.
	assert.False(t, crc24q_check(frame[:60]))
}
