package slay

import (
	"github.com/cespare/xxhash/v2"
	g "go.hasen.dev/generic"
)

func Hash[T any](h *xxhash.Digest, v *T) {
	h.Write(g.UnsafeRawBytes(v))
}

func HashSlice[T any](h *xxhash.Digest, v []T) {
	h.Write(g.UnsafeSliceBytes(v))
}

// relies on Surface being a flat plain object with no pointers
func computeSurfacesHash(ss []Surface) uint64 {
	var h = xxhash.New()
	HashSlice(h, ss)
	return h.Sum64()
}

// synthetic container ids: the parent scope hashed with the child key

type scopeId uint64

func addChildScope[T any](s scopeId, n T) scopeId {
	var h = xxhash.New()
	Hash(h, &s)
	Hash(h, &n)
	return scopeId(h.Sum64())
}

func scopeIdFrom(id any) scopeId {
	switch v := id.(type) {
	case string:
		return scopeId(xxhash.Sum64String(v))
	case scopeId:
		return v
	default:
		return addChildScope(scopeId(0), id)
	}
}
