package common

// WipeByteArray overwrites the buffer with zeros. Used to reduce the
// lifetime of plaintext passwords in memory. Nil-safe.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
