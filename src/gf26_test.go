package b2brec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGF26KnownProducts(t *testing.T) {
	// x * x = x^2
	assert.Equal(t, uint8(4), gf26_mul(2, 2))
	// x^5 * x = x^6 = x + 1
	assert.Equal(t, uint8(3), gf26_mul(0x20, 2))
	// Multiplication by 1 is the identity.
	for a := 0; a < 64; a++ {
		assert.Equal(t, uint8(a), gf26_mul(uint8(a), 1))
	}
	// Multiplication by 0 annihilates.
	for a := 0; a < 64; a++ {
		assert.Equal(t, uint8(0), gf26_mul(uint8(a), 0))
		assert.Equal(t, uint8(0), gf26_mul(0, uint8(a)))
	}
}

func TestGF26Inverses(t *testing.T) {
	// Every nonzero element times its inverse is 1.
	for a := 1; a < 64; a++ {
		assert.Equal(t, uint8(1), gf26_mul(uint8(a), gf26_inv(uint8(a))), "a=%d", a)
	}
}

func TestGF26AddSelfInverse(t *testing.T) {
	for a := 0; a < 64; a++ {
		assert.Equal(t, uint8(0), gf26_add(uint8(a), uint8(a)))
	}
}

func TestGF26Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Draw(t, "a") & 0x3F
		var b = rapid.Byte().Draw(t, "b") & 0x3F
		var c = rapid.Byte().Draw(t, "c") & 0x3F

		// Commutativity.
		assert.Equal(t, gf26_mul(a, b), gf26_mul(b, a))

		// Associativity.
		assert.Equal(t, gf26_mul(gf26_mul(a, b), c), gf26_mul(a, gf26_mul(b, c)))

		// Distributivity over XOR.
		assert.Equal(t,
			gf26_add(gf26_mul(a, b), gf26_mul(a, c)),
			gf26_mul(a, gf26_add(b, c)))

		// Results stay in the field.
		assert.Less(t, gf26_mul(a, b), uint8(64))
	})
}

func TestGF26OutOfRangeSaturates(t *testing.T) {
	// Inputs outside [0,63] reduce mod 64 before multiplying.
	assert.Equal(t, gf26_mul(3, 5), gf26_mul(3+64, 5))
	assert.Equal(t, gf26_inv(7), gf26_inv(7+64))
}
