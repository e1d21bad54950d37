package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Bit-level search for the B-CNAV3 frame sync header.
 *
 * Description:	Each encoded frame starts with the fixed 16-bit
 *		pattern 0xEB90, transmitted high bit first.  The
 *		pattern can land at any bit offset within the byte
 *		stream, so the search walks bit positions, not byte
 *		positions.
 *
 *		When the header is found the window is shifted so the
 *		header starts at bit 0.  When it is not found, all but
 *		the last 15 bits are discarded: 15 bits is the longest
 *		prefix of the 16-bit header that could already have
 *		arrived, so a header straddling this chunk and the next
 *		is still found while the window stays bounded.
 *
 *------------------------------------------------------------------*/

const SYNC_HEADER = 0xEB90
const SYNC_HEADER_BITS = 16
const SYNC_RESIDUAL_BITS = SYNC_HEADER_BITS - 1

// find_sync_header searches bb for the sync pattern.  On success the
// window is left with the header at bit offset 0 and true is
// returned.  On failure the window keeps only its last 15 bits.
// A window shorter than 16 bits is left untouched.
func find_sync_header(bb *bitbuf_t) bool {
	var n = bitbuf_len(bb)
	if n < SYNC_HEADER_BITS {
		return false
	}

	// Slide a 16-bit register over the stream; first match wins.
	var window uint16
	for i := 0; i < SYNC_HEADER_BITS-1; i++ {
		window = window<<1 | uint16(bitbuf_bit(bb, i))
	}
	for i := SYNC_HEADER_BITS - 1; i < n; i++ {
		window = window<<1 | uint16(bitbuf_bit(bb, i))
		if window == SYNC_HEADER {
			bitbuf_drop_front(bb, i-(SYNC_HEADER_BITS-1))
			return true
		}
	}

	bitbuf_keep_tail(bb, SYNC_RESIDUAL_BITS)
	return false
}
