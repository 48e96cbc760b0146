package ui

import "github.com/go-ember/ember/pkg/rendering"

// Widget identity is a 32-bit hash of a stable string seed combined
// with the widget's layout position. Identities are always masked to
// 31 bits with a non-zero guarantee: zero is the reserved "no widget"
// sentinel, so a derived identity must never collide with it.

const (
	// idMask keeps the low 31 bits of a hash. The top bit is reserved
	// so identities survive signed round-trips through host embeddings.
	idMask = 0x7FFFFFFF

	// fnv-1a parameters.
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// hashString is 32-bit FNV-1a over the bytes of s.
func hashString(s string) uint32 {
	h := uint32(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// hashPos hashes a layout position, quantized to whole pixels so
// sub-pixel jitter between frames cannot change a widget's identity.
func hashPos(x, y float32) uint32 {
	h := uint32(fnvOffset)
	ix, iy := uint32(int32(x)), uint32(int32(y))
	for _, v := range [8]uint32{
		ix & 0xFF, ix >> 8 & 0xFF, ix >> 16 & 0xFF, ix >> 24,
		iy & 0xFF, iy >> 8 & 0xFF, iy >> 16 & 0xFF, iy >> 24,
	} {
		h ^= v
		h *= fnvPrime
	}
	return h
}

// maskedID truncates a hash to 31 bits and forces a non-zero result.
// About one hash in 2^31 would otherwise mask to the sentinel; those
// are folded onto 1, accepting the residual collision as negligible.
func maskedID(h uint32) uint32 {
	h &= idMask
	if h == 0 {
		h = 1
	}
	return h
}

// widgetID derives the identity for a labeled widget at a given
// position. Combining the label with the position keeps two widgets
// with the same label distinct.
func widgetID(label string, rect rendering.Rect) uint32 {
	return maskedID(hashString(label) ^ hashPos(rect.X, rect.Y))
}
