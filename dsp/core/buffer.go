package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []uint16, n int) []uint16 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]uint16, n)
}

// Fill sets every element of buf to v.
func Fill(buf []uint16, v uint16) {
	for i := range buf {
		buf[i] = v
	}
}
