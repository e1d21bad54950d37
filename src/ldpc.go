package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Truncated extended min-sum decoder for the B-CNAV3
 *		non-binary LDPC code.
 *
 * Description:	Log-domain belief propagation over GF(2^6).  The 123
 *		payload octets are repacked into 162 six-bit symbols
 *		and each symbol gets a 64-entry log-likelihood vector
 *		under a hard-channel approximation: the received value
 *		scores -10, every other hypothesis +10.
 *
 *		Messages between variable and check nodes are
 *		truncated to the 16 smallest LLR entries, kept with
 *		their GF symbol indices; the discarded entries read as
 *		the neutral +10 when a message is expanded.  Message
 *		state is allocated once per decoder and reset to
 *		neutral at the top of every iteration.
 *
 *		Multiplying an LLR vector by a field coefficient g
 *		permutes entry f to entry f*g, taking the minimum per
 *		target against the neutral value.
 *
 *		An iteration ends with a hard decision and a GF(2^6)
 *		syndrome check; all-zero syndromes terminate decoding.
 *		The decoder gives up after 50 iterations.
 *
 *------------------------------------------------------------------*/

import "errors"

const LDPC_MAX_ITER = 50
const LDPC_TRUNCATE = 16 // entries kept per message

const LLR_NEUTRAL = 10.0
const LLR_RECEIVED = -10.0

var ErrLdpcFailure = errors.New("ldpc: decoder did not converge")

// One truncated message: LDPC_TRUNCATE (value, symbol) entries,
// ascending by value.
type ldpc_msg_t struct {
	val [LDPC_TRUNCATE]float64
	sym [LDPC_TRUNCATE]uint8
}

type ldpc_decoder_t struct {
	llr  [LDPC_SYMBOLS][GF26_SIZE]float64
	recv [LDPC_SYMBOLS]uint8
	hard [LDPC_SYMBOLS]uint8

	// Per-edge message state, row-side: v2c[i][e] and c2v[i][e]
	// belong to the edge between check i and ldpc_rows[i].syms[e].
	v2c [LDPC_CHECKS][]ldpc_msg_t
	c2v [LDPC_CHECKS][]ldpc_msg_t
}

func ldpc_decoder_new() *ldpc_decoder_t {
	ldpc_h_init()

	var d = new(ldpc_decoder_t)
	for i := 0; i < LDPC_CHECKS; i++ {
		d.v2c[i] = make([]ldpc_msg_t, len(ldpc_rows[i].syms))
		d.c2v[i] = make([]ldpc_msg_t, len(ldpc_rows[i].syms))
	}
	return d
}

func ldpc_msg_reset(m *ldpc_msg_t) {
	for k := 0; k < LDPC_TRUNCATE; k++ {
		m.val[k] = LLR_NEUTRAL
		m.sym[k] = uint8(k)
	}
}

// ldpc_msg_expand writes a truncated message into a full 64-entry
// vector; entries not carried by the message read as neutral.
func ldpc_msg_expand(m *ldpc_msg_t, out *[GF26_SIZE]float64) {
	for f := 0; f < GF26_SIZE; f++ {
		out[f] = LLR_NEUTRAL
	}
	for k := 0; k < LDPC_TRUNCATE; k++ {
		out[m.sym[k]] = m.val[k]
	}
}

// ldpc_msg_truncate keeps the 16 smallest entries of a full vector,
// ascending by value, lowest symbol first on ties.
func ldpc_msg_truncate(v *[GF26_SIZE]float64, m *ldpc_msg_t) {
	var taken [GF26_SIZE]bool
	for k := 0; k < LDPC_TRUNCATE; k++ {
		var best = -1
		for f := 0; f < GF26_SIZE; f++ {
			if taken[f] {
				continue
			}
			if best < 0 || v[f] < v[best] {
				best = f
			}
		}
		taken[best] = true
		m.val[k] = v[best]
		m.sym[k] = uint8(best)
	}
}

// ldpc_llr_multiply permutes an LLR vector by the GF(2^6) map
// f -> f*g, taking the per-target minimum against neutral.
func ldpc_llr_multiply(v *[GF26_SIZE]float64, g uint8, out *[GF26_SIZE]float64) {
	for f := 0; f < GF26_SIZE; f++ {
		out[f] = LLR_NEUTRAL
	}
	for f := 0; f < GF26_SIZE; f++ {
		var nf = gf26_mul(uint8(f), g)
		if v[f] < out[nf] {
			out[nf] = v[f]
		}
	}
}

// payload_to_symbols repacks the 123 codeword octets into 162
// six-bit symbols, high bit first.  The trailing 12 bits of the
// payload are padding and ignored.
func payload_to_symbols(payload []byte, syms *[LDPC_SYMBOLS]uint8) {
	for j := 0; j < LDPC_SYMBOLS; j++ {
		var bitpos = j * 6
		var s uint8
		for k := 0; k < 6; k++ {
			var n = bitpos + k
			s = s<<1 | (payload[n>>3]>>(7-uint(n&7)))&1
		}
		syms[j] = s
	}
}

// symbols_to_frame packs the 81 information symbols into 61 octets,
// high bit first.  486 = 60*8 + 6, so the final octet is shifted
// only six times and carries its bits in the low positions.
func symbols_to_frame(syms []uint8) []byte {
	var frame = make([]byte, DECODED_FRAME_LEN)
	var nbits = len(syms) * 6
	for n := 0; n < nbits; n++ {
		var bit = (syms[n/6] >> (5 - uint(n%6))) & 1
		frame[n>>3] = frame[n>>3]<<1 | bit
	}
	return frame
}

// ldpc_decode runs truncated-EMS decoding over one 123-octet
// payload.  On success it returns the 61-octet decoded frame.
func ldpc_decode(d *ldpc_decoder_t, payload []byte) ([]byte, error) {
	if len(payload) != ENCODED_PAYLOAD_LEN {
		return nil, errors.New("ldpc: payload must be 123 octets")
	}

	payload_to_symbols(payload, &d.recv)

	for j := 0; j < LDPC_SYMBOLS; j++ {
		for f := 0; f < GF26_SIZE; f++ {
			d.llr[j][f] = LLR_NEUTRAL
		}
		d.llr[j][d.recv[j]] = LLR_RECEIVED
	}

	var sum, expanded, work [GF26_SIZE]float64

	for iter := 0; iter < LDPC_MAX_ITER; iter++ {
		for i := 0; i < LDPC_CHECKS; i++ {
			for e := range d.v2c[i] {
				ldpc_msg_reset(&d.v2c[i][e])
				ldpc_msg_reset(&d.c2v[i][e])
			}
		}

		// Variable node update.
		for j := 0; j < LDPC_SYMBOLS; j++ {
			var col = &ldpc_cols[j]

			for f := 0; f < GF26_SIZE; f++ {
				sum[f] = d.llr[j][f]
			}
			for k := range col.checks {
				ldpc_msg_expand(&d.c2v[col.checks[k]][col.edge[k]], &expanded)
				for f := 0; f < GF26_SIZE; f++ {
					sum[f] += expanded[f]
				}
			}

			for k := range col.checks {
				var i = col.checks[k]
				var e = col.edge[k]
				ldpc_msg_expand(&d.c2v[i][e], &expanded)
				for f := 0; f < GF26_SIZE; f++ {
					expanded[f] = sum[f] - expanded[f]
				}
				ldpc_llr_multiply(&expanded, gf26_inv(col.coeffs[k]), &work)
				ldpc_msg_truncate(&work, &d.v2c[i][e])
			}
		}

		// Check node update.
		for i := 0; i < LDPC_CHECKS; i++ {
			var row = &ldpc_rows[i]
			for e := range row.syms {
				for f := 0; f < GF26_SIZE; f++ {
					sum[f] = LLR_NEUTRAL
				}
				for o := range row.syms {
					if o == e {
						continue
					}
					ldpc_msg_expand(&d.v2c[i][o], &expanded)
					for f := 0; f < GF26_SIZE; f++ {
						if expanded[f] < sum[f] {
							sum[f] = expanded[f]
						}
					}
				}
				ldpc_llr_multiply(&sum, row.coeffs[e], &work)
				ldpc_msg_truncate(&work, &d.c2v[i][e])
			}
		}

		// Hard decision: argmin of intrinsic plus all check
		// messages, lowest symbol on ties.
		for j := 0; j < LDPC_SYMBOLS; j++ {
			var col = &ldpc_cols[j]

			for f := 0; f < GF26_SIZE; f++ {
				sum[f] = d.llr[j][f]
			}
			for k := range col.checks {
				ldpc_msg_expand(&d.c2v[col.checks[k]][col.edge[k]], &expanded)
				for f := 0; f < GF26_SIZE; f++ {
					sum[f] += expanded[f]
				}
			}

			var best uint8
			for f := 1; f < GF26_SIZE; f++ {
				if sum[f] < sum[best] {
					best = uint8(f)
				}
			}
			d.hard[j] = best
		}

		// Syndrome check over GF(2^6).
		var pass = true
		for i := 0; i < LDPC_CHECKS; i++ {
			var row = &ldpc_rows[i]
			var s uint8
			for e := range row.syms {
				s = gf26_add(s, gf26_mul(d.hard[row.syms[e]], row.coeffs[e]))
			}
			if s != 0 {
				pass = false
				break
			}
		}
		if pass {
			return symbols_to_frame(d.hard[:LDPC_INFO_SYMBOLS]), nil
		}
	}

	return nil, ErrLdpcFailure
}
