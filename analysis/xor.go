// Package analysis recovers a many-time-pad key from ciphertexts that share
// the same key stream.
package analysis

// Xor returns the XOR combination of the common prefix of two buffers.
// Bytes past the end of the shorter buffer are ignored.
func Xor(a, b []byte) []byte {
	n := min(len(a), len(b))
	res := make([]byte, n)
	for i := 0; i < n; i++ {
		res[i] = a[i] ^ b[i]
	}
	return res
}

// IsProbableSpace reports whether c, the XOR of two plaintext bytes, suggests
// that one of them was a space. A space XOR a letter flips the case bit and
// gives another letter; two spaces give 0x00.
func IsProbableSpace(c byte) bool {
	return c == 0x00 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ProbableSpaces returns the positions in Xor(a, b) classified as a
// probable space, in ascending order.
func ProbableSpaces(a, b []byte) []int {
	var res []int
	for i, c := range Xor(a, b) {
		if IsProbableSpace(c) {
			res = append(res, i)
		}
	}
	return res
}
