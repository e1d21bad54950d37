package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Arithmetic over GF(2^6) for the B-CNAV3 non-binary
 *		LDPC code.
 *
 * Description:	Polynomial basis over GF(2) with primitive polynomial
 *		x^6 + x + 1.  Addition is XOR.  Multiplication is
 *		shift-and-XOR with modular reduction: a bit shifted out
 *		of position 5 corresponds to x^6, which reduces to
 *		x + 1, so the overflow is folded back in as 0x03.
 *
 *------------------------------------------------------------------*/

const GF26_SIZE = 64

func gf26_add(a uint8, b uint8) uint8 {
	return a ^ b
}

func gf26_mul(a uint8, b uint8) uint8 {
	a &= GF26_SIZE - 1
	b &= GF26_SIZE - 1

	var result uint8
	for a != 0 && b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		var carry = a & 0x20
		a = (a << 1) & (GF26_SIZE - 1)
		if carry != 0 {
			a ^= 0x03
		}
		b >>= 1
	}
	return result
}

/*
 * Multiplicative inverses.  Entry 0 has no inverse and is never
 * queried by the decoder: H stores 0 for an absent edge and the
 * inverse is only ever taken of a nonzero coefficient.
 */

var gf26_inv_table = [GF26_SIZE]uint8{
	0, 1, 33, 62, 49, 43, 31, 44, 57, 37, 52, 28, 46, 40, 22, 25,
	61, 54, 51, 39, 26, 35, 14, 24, 23, 15, 20, 34, 11, 53, 45, 6,
	63, 2, 27, 21, 56, 9, 50, 19, 13, 47, 48, 5, 7, 30, 12, 41,
	42, 4, 38, 18, 10, 29, 17, 60, 36, 8, 59, 58, 55, 16, 3, 32,
}

func gf26_inv(a uint8) uint8 {
	return gf26_inv_table[a%GF26_SIZE]
}
