package b32

// Uint64 encoding: a fixed 13-symbol representation of a uint64 in the
// Encoding's alphabet. 13 symbols carry 65 bits, so the first symbol
// only contributes its low 4 bits; the encoder always emits a first
// symbol with value below 16, and the parser ignores the fifth bit.
// Useful for string IDs: unlike the byte codec, values of the same
// width sort lexically in encoded form whenever the alphabet is in
// ASCII order.

const mask = 31

// AppendUint64 appends the 13-symbol encoding of id to dst and returns
// the extended buffer.
func (enc *Encoding) AppendUint64(dst []byte, id uint64) []byte {
	a := enc.alphabet
	return append(dst,
		a[id>>60&mask],
		a[id>>55&mask],
		a[id>>50&mask],
		a[id>>45&mask],
		a[id>>40&mask],
		a[id>>35&mask],
		a[id>>30&mask],
		a[id>>25&mask],
		a[id>>20&mask],
		a[id>>15&mask],
		a[id>>10&mask],
		a[id>>5&mask],
		a[id&mask],
	)
}

// Uint64 parses a 13-symbol buffer produced by [Encoding.AppendUint64]
// back into a uint64. Case sensitivity follows the Encoding's
// configuration. It returns a [FormatError] for any other length or
// for symbols outside the alphabet.
func (enc *Encoding) Uint64(b []byte) (uint64, error) {
	if len(b) != 13 {
		return 0, FormatError("invalid length for uint64 input")
	}
	table := enc.cache.table(enc.alphabet, enc.caseSensitive)

	v0 := table[b[0]]
	if v0 == invalidIndex {
		return 0, errInvalidChar(b[0], enc.alphabet)
	}
	id := uint64(v0 & 0x0F)
	for _, c := range b[1:] {
		v := table[c]
		if v == invalidIndex {
			return 0, errInvalidChar(c, enc.alphabet)
		}
		id = id<<5 | uint64(v)
	}
	return id, nil
}
