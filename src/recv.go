package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Frame-synchronization and decoding pipeline for
 *		B-CNAV3 navigation messages.
 *
 * Description:	Byte chunks of any size go in; validated 61-octet
 *		frames come out.  For each chunk the receiver appends
 *		to its bit window and then repeatedly: locates the
 *		sync header (bit-level), slices one 125-octet encoded
 *		frame, LDPC-decodes the codeword, verifies the
 *		CRC-24Q, parses the header and checks the PRN against
 *		the current lock.  Any failure drops that frame and
 *		the loop continues with the following bits.
 *
 *		The first accepted frame locks the PRN.  A later valid
 *		frame with a different PRN is dropped, the lock is
 *		cleared, and the receiver re-locks on the next valid
 *		frame.
 *
 *		All state lives behind one mutex: chunks arrive on a
 *		source adapter's goroutine while stop() may be called
 *		from another.  Once stop() returns no further frame
 *		events are emitted.
 *
 *------------------------------------------------------------------*/

import (
	"sync"

	"github.com/charmbracelet/log"
)

// frame_ready_cb receives each accepted frame.  The slice is owned
// by the callee.
type frame_ready_cb func(frame []byte, prn uint8, msg_type uint8)

type receiver_t struct {
	mu sync.Mutex

	buffer     *bitbuf_t
	locked_prn uint8 // 0 = not locked
	running    bool

	dec      *ldpc_decoder_t
	frame_cb frame_ready_cb
	logger   *log.Logger
}

func receiver_new(cb frame_ready_cb, logger *log.Logger) *receiver_t {
	if logger == nil {
		logger = log.Default()
	}
	return &receiver_t{
		buffer:   bitbuf_new(),
		dec:      ldpc_decoder_new(),
		frame_cb: cb,
		logger:   logger,
	}
}

// receiver_start clears per-run state and begins accepting chunks.
func receiver_start(r *receiver_t) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer = bitbuf_new()
	r.locked_prn = 0
	r.running = true
}

// receiver_stop stops processing.  Synchronous: a chunk in flight on
// another goroutine finishes first, and nothing is emitted after
// this returns.
func receiver_stop(r *receiver_t) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.running = false
}

func receiver_running(r *receiver_t) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running
}

func receiver_locked_prn(r *receiver_t) uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.locked_prn
}

// receiver_buffered_bits reports the current window size.  It never
// exceeds one encoded frame plus the 15-bit sync residual.
func receiver_buffered_bits(r *receiver_t) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return bitbuf_len(r.buffer)
}

// receiver_process_bytes feeds one chunk from the byte source.  A
// single chunk can complete zero or more frames; they are emitted in
// the order their sync headers appear in the stream.
func receiver_process_bytes(r *receiver_t, chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running || len(chunk) == 0 {
		return
	}

	bitbuf_append_bytes(r.buffer, chunk)

	for bitbuf_len(r.buffer) >= ENCODED_FRAME_LEN*8 {
		if !find_sync_header(r.buffer) {
			// Residual kept by the finder; wait for more.
			break
		}
		if bitbuf_len(r.buffer) < ENCODED_FRAME_LEN*8 {
			// Header found near the end of the window.
			break
		}

		var encoded = bitbuf_peek_bytes(r.buffer, ENCODED_FRAME_LEN)
		bitbuf_drop_front(r.buffer, ENCODED_FRAME_LEN*8)

		var decoded, decodeErr = ldpc_decode(r.dec, encoded[2:])
		if decodeErr != nil {
			r.logger.Warn("dropping frame", "reason", decodeErr)
			continue
		}

		if !crc24q_check(decoded) {
			r.logger.Warn("dropping frame", "reason", "CRC-24Q mismatch")
			continue
		}

		var prn, msg_type, hdrErr = parse_frame_header(decoded)
		if hdrErr != nil {
			r.logger.Warn("dropping frame", "reason", hdrErr)
			continue
		}

		if r.locked_prn != 0 && prn != r.locked_prn {
			r.logger.Warn("PRN mismatch, clearing lock", "locked", r.locked_prn, "got", prn)
			r.locked_prn = 0
			continue
		}
		if r.locked_prn == 0 {
			r.locked_prn = prn
			r.logger.Info("PRN locked", "prn", prn)
		}

		r.logger.Info("frame decoded", "prn", prn, "msg_type", msg_type)
		if r.frame_cb != nil {
			r.frame_cb(decoded, prn, msg_type)
		}
	}
}
