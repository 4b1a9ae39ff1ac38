package planar

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// maxEnvelopeLanes bounds the vector width handled by BaseFlatEnvelope
// (AVX-512 holds 16 float32 lanes).
const maxEnvelopeLanes = 16

// BaseFlatEnvelope computes the X and Y extent of a go-geom flat coordinate
// sequence, in which each coordinate occupies stride consecutive values
// starting with X and Y. Trailing values that do not form a whole coordinate
// are ignored. An empty sequence returns zeros.
//
// When the vector width is a multiple of stride, every vector load starts on
// a coordinate boundary and lane i always holds ordinate i%stride, so the X
// and Y extents are reduced in one pass without deinterleaving.
func BaseFlatEnvelope[T hwy.Floats](flat []T, stride int) (minX, minY, maxX, maxY T) {
	if stride < 2 {
		return
	}
	n := len(flat) - len(flat)%stride
	if n == 0 {
		return
	}
	minX, maxX = flat[0], flat[0]
	minY, maxY = flat[1], flat[1]

	lanes := hwy.MaxLanes[T]()
	if lanes < stride || lanes%stride != 0 || lanes > maxEnvelopeLanes || n < lanes {
		for i := stride; i < n; i += stride {
			x, y := flat[i], flat[i+1]
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
		return
	}

	// The first full vector seeds both accumulators, so masked tail lanes
	// are replaced with values of the same ordinate.
	vMin := hwy.Load(flat)
	vMax := vMin
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			v := hwy.Load(flat[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, flat[offset:])
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	var mins, maxs [maxEnvelopeLanes]T
	hwy.Store(vMin, mins[:lanes])
	hwy.Store(vMax, maxs[:lanes])
	for i := 0; i < lanes; i += stride {
		minX, maxX = min(minX, mins[i]), max(maxX, maxs[i])
		minY, maxY = min(minY, mins[i+1]), max(maxY, maxs[i+1])
	}
	return
}
