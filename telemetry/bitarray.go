package telemetry

// 5-bit packed arrays: value i occupies bits [5i, 5i+5) of the buffer,
// least-significant bit first within each byte, groups crossing byte
// boundaries as needed. Values are already in final 0..31 units.

// Unpack5 reads count consecutive 5-bit unsigned integers from src into
// dst and returns how many were written. The count is clamped to len(dst)
// and to what src can safely hold; there is no error path.
func Unpack5(dst []uint8, src []byte, count int) int {
	if count < 0 {
		return 0
	}
	if count > len(dst) {
		count = len(dst)
	}
	if max := len(src) * 8 / 5; count > max {
		count = max
	}
	for i := 0; i < count; i++ {
		bit := i * 5
		b := bit >> 3
		sh := uint(bit & 7)
		v := uint16(src[b]) >> sh
		if sh > 3 && b+1 < len(src) {
			v |= uint16(src[b+1]) << (8 - sh)
		}
		dst[i] = uint8(v & 0x1F)
	}
	return count
}

// Pack5 writes vals as consecutive 5-bit groups into dst and returns the
// number of bytes used. Values are masked to 5 bits; vals that do not fit
// in dst are dropped.
func Pack5(dst []byte, vals []uint8) int {
	used := 0
	for i, v := range vals {
		bit := i * 5
		b := bit >> 3
		sh := uint(bit & 7)
		if b >= len(dst) {
			break
		}
		dst[b] |= (v & 0x1F) << sh
		if sh > 3 {
			if b+1 >= len(dst) {
				break
			}
			dst[b+1] |= (v & 0x1F) >> (8 - sh)
			used = b + 2
		} else if b+1 > used {
			used = b + 1
		}
	}
	return used
}

// Packed5Len returns the number of bytes needed to pack n 5-bit values.
func Packed5Len(n int) int {
	if n <= 0 {
		return 0
	}
	return (n*5 + 7) / 8
}
