package codec

import "github.com/holiman/uint256"

// uint256ToLEBytes renders v as an n-byte little-endian slice, the
// same hand-rolled conversion view.BasicView uses internally (uint256
// ships only a big-endian SetBytes/Bytes pair).
func uint256ToLEBytes(v *uint256.Int, n int) []byte {
	out := make([]byte, n)
	tmp := new(uint256.Int).Set(v)
	mask := uint256.NewInt(0xff)
	for i := 0; i < n; i++ {
		b := new(uint256.Int).And(tmp, mask)
		out[i] = byte(b.Uint64())
		tmp.Rsh(tmp, 8)
	}
	return out
}

// uint256FromLEBytes reconstructs a uint256.Int from little-endian
// bytes.
func uint256FromLEBytes(b []byte) *uint256.Int {
	z := new(uint256.Int)
	for i := len(b) - 1; i >= 0; i-- {
		z.Lsh(z, 8)
		z.Or(z, uint256.NewInt(uint64(b[i])))
	}
	return z
}
