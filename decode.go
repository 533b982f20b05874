package b32

// DecodedLen returns the maximum length in bytes of the decoding of n
// input symbols. The actual decoded length can be smaller when the
// input contains padding or whitespace.
func (enc *Encoding) DecodedLen(n int) int {
	return n * 5 / 8
}

// AppendDecode appends the bytes represented by src to dst and returns
// the extended buffer. It returns a [FormatError] if src contains a
// symbol outside the alphabet or, for a padded Encoding, has a length
// that is not a multiple of 8.
//
// The decoder is deliberately permissive about chunk lengths: a final
// chunk of 1, 3 or 6 symbols is not something an encoder ever emits,
// but it is not rejected either. floor(m*5/8) bytes are produced per
// m-symbol chunk, and trailing bits short of a full byte are
// discarded.
func (enc *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	if enc.ignoreWhitespace {
		src = stripSpace(src)
	}
	if enc.padChar != NoPadding {
		if len(src)%8 != 0 {
			return nil, FormatError("invalid length for padded input")
		}
		pad := byte(enc.padChar)
		for len(src) > 0 && src[len(src)-1] == pad {
			src = src[:len(src)-1]
		}
	}

	table := enc.cache.table(enc.alphabet, enc.caseSensitive)
	for len(src) > 0 {
		m := len(src)
		if m > 8 {
			m = 8
		}

		// Pack the chunk's 5-bit values into a 40-bit group, anchored
		// at the most significant end like the encoder's bytes.
		var val uint64
		for i := 0; i < m; i++ {
			v := table[src[i]]
			if v == invalidIndex {
				return nil, errInvalidChar(src[i], enc.alphabet)
			}
			val |= uint64(v) << (35 - 5*i)
		}
		for i, n := 0, m*5/8; i < n; i++ {
			dst = append(dst, byte(val>>(32-8*i)))
		}
		src = src[m:]
	}
	return dst, nil
}

// Decode decodes src into dst, returning the number of bytes written.
// dst must be at least [Encoding.DecodedLen](len(src)) bytes long.
func (enc *Encoding) Decode(dst, src []byte) (int, error) {
	res, err := enc.AppendDecode(dst[:0], src)
	if err != nil {
		return 0, err
	}
	return len(res), nil
}

// DecodeString returns the bytes represented by the encoded string s.
func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	return enc.AppendDecode(make([]byte, 0, enc.DecodedLen(len(s))), []byte(s))
}

// stripSpace returns src without ASCII whitespace, allocating only if
// there is any to strip.
func stripSpace(src []byte) []byte {
	i := 0
	for i < len(src) && !isSpace(src[i]) {
		i++
	}
	if i == len(src) {
		return src
	}
	out := make([]byte, i, len(src))
	copy(out, src[:i])
	for ; i < len(src); i++ {
		if !isSpace(src[i]) {
			out = append(out, src[i])
		}
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
