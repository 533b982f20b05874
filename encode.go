package b32

import "slices"

// EncodedLen returns the length in symbols of the encoding of an input
// buffer of length n, including padding if the Encoding uses it.
func (enc *Encoding) EncodedLen(n int) int {
	if enc.padChar == NoPadding {
		return (n*8 + 4) / 5
	}
	return (n + 4) / 5 * 8
}

// Encode encodes src, writing [Encoding.EncodedLen](len(src)) symbols
// to dst. Encoding never fails: every byte buffer has a valid
// representation.
func (enc *Encoding) Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	table := enc.alphabet

	di, si := 0, 0
	n := (len(src) / 5) * 5
	for si < n {
		// Combining two 32 bit loads allows the same code to be used
		// for 32 and 64 bit platforms.
		hi := uint32(src[si+0])<<24 | uint32(src[si+1])<<16 | uint32(src[si+2])<<8 | uint32(src[si+3])
		lo := hi<<8 | uint32(src[si+4])

		dst[di+0] = table[(hi>>27)&0x1F]
		dst[di+1] = table[(hi>>22)&0x1F]
		dst[di+2] = table[(hi>>17)&0x1F]
		dst[di+3] = table[(hi>>12)&0x1F]
		dst[di+4] = table[(hi>>7)&0x1F]
		dst[di+5] = table[(hi>>2)&0x1F]
		dst[di+6] = table[(lo>>5)&0x1F]
		dst[di+7] = table[(lo)&0x1F]

		si += 5
		di += 8
	}

	// Encode the remaining bytes in reverse order.
	remain := len(src) - si
	val := uint32(0)
	switch remain {
	case 4:
		val |= uint32(src[si+3])
		dst[di+6] = table[val<<3&0x1F]
		dst[di+5] = table[val>>2&0x1F]
		fallthrough
	case 3:
		val |= uint32(src[si+2]) << 8
		dst[di+4] = table[val>>7&0x1F]
		fallthrough
	case 2:
		val |= uint32(src[si+1]) << 16
		dst[di+3] = table[val>>12&0x1F]
		dst[di+2] = table[val>>17&0x1F]
		fallthrough
	case 1:
		val |= uint32(src[si+0]) << 24
		dst[di+1] = table[val>>22&0x1F]
		dst[di+0] = table[val>>27&0x1F]
	}

	if enc.padChar == NoPadding {
		return
	}
	for di += encSymbols(remain); di%8 != 0; di++ {
		dst[di] = byte(enc.padChar)
	}
}

// encSymbols is the symbol count for a final chunk of n bytes, 0 <= n <= 4.
func encSymbols(n int) int {
	return (n*8 + 4) / 5
}

// AppendEncode appends the encoding of src to dst and returns the
// extended buffer.
func (enc *Encoding) AppendEncode(dst, src []byte) []byte {
	n := enc.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	enc.Encode(dst[len(dst):][:n], src)
	return dst[:len(dst)+n]
}

// EncodeToString returns the encoding of src.
func (enc *Encoding) EncodeToString(src []byte) string {
	buf := make([]byte, enc.EncodedLen(len(src)))
	enc.Encode(buf, src)
	return string(buf)
}
