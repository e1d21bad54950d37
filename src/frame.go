package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	B-CNAV3 frame layout and header parsing.
 *
 * Description:	One encoded frame is 1000 bits on the wire: the
 *		16-bit sync header followed by 123 octets of LDPC
 *		codeword.  Decoding yields 486 information bits packed
 *		into 61 octets.  The first 12 bits of the decoded frame
 *		identify the satellite (PRN, 6 bits) and the message
 *		type (6 bits).
 *
 *------------------------------------------------------------------*/

import "fmt"

const ENCODED_FRAME_LEN = 125 // sync header + codeword, octets
const ENCODED_PAYLOAD_LEN = ENCODED_FRAME_LEN - 2
const DECODED_FRAME_LEN = 61 // 486 bits, final octet holds 6

const PRN_MIN = 6
const PRN_MAX = 58

// Message types defined for B-CNAV3.
const (
	MSG_TYPE_EPH     = 10 // ephemeris
	MSG_TYPE_CLOCK   = 30 // clock and ionosphere
	MSG_TYPE_ALMANAC = 40 // midi almanac
)

// parse_frame_header extracts the PRN and message type from a
// decoded frame.  The PRN is the 6 high bits of octet 0; the message
// type is the following 6 bits, straddling octets 0 and 1.
func parse_frame_header(frame []byte) (uint8, uint8, error) {
	if len(frame) < 4 {
		return 0, 0, fmt.Errorf("frame too short for header: %d octets", len(frame))
	}

	var prn = (frame[0] >> 2) & 0x3F
	var msg_type = (frame[0]&0x03)<<4 | frame[1]>>4

	switch msg_type {
	case MSG_TYPE_EPH, MSG_TYPE_CLOCK, MSG_TYPE_ALMANAC:
		return prn, msg_type, nil
	}
	return 0, 0, fmt.Errorf("invalid message type %d", msg_type)
}
