// Package noise implements fractal Brownian motion over classic 2D gradient
// noise. It drives the organic flicker of every light in the scene.
//
// References:
//   - Perlin noise: https://mrl.cs.nyu.edu/~perlin/noise/
//   - Fractal Brownian motion: https://en.wikipedia.org/wiki/Fractional_Brownian_motion
package noise

import "math"

// permutation is the fixed table used for hashing integer lattice
// coordinates. It is process-wide constant data; the generator has no
// mutable state.
var permutation = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240,
	21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33, 88,
	237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83,
	111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54, 65, 25, 63, 161, 1, 216,
	80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186,
	3, 64, 52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17,
	182, 189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9, 129,
	22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34, 242, 193, 238,
	210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157, 184,
	84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195,
	78, 66, 215, 61, 156, 180,
}

// Generate combines fractal Brownian motion with multiple octaves of 2D
// gradient noise. Each octave has double the frequency and half the
// amplitude of the previous; the result is normalized to [-1, 1] by the
// running amplitude sum regardless of octave count.
//
// octaves <= 0 yields 0 rather than dividing by a zero normalizer; callers
// that treat zero octaves as a configuration bug validate before reaching
// this point.
func Generate(x, y float64, octaves int) float64 {
	if octaves <= 0 {
		return 0
	}

	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += perlin2D(x*frequency, y*frequency) * amplitude

		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return total / maxValue
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. Lower-order curves
// leave grid-aligned discontinuities in the second derivative that show up
// as faceted flicker.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

// grad selects one of 8 gradient directions from the low 3 bits of the hash
// and returns its dot product with (x, y).
func grad(hash uint8, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// lerp is linear interpolation between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// perlin2D generates 2D gradient noise at the given coordinates.
func perlin2D(x, y float64) float64 {
	// Relative position within the cell.
	xRel := x - math.Floor(x)
	yRel := y - math.Floor(y)

	// Fade curves for smooth interpolation.
	u := fade(xRel)
	v := fade(yRel)

	// Hash coordinates of the 4 cell corners, chaining two table lookups to
	// derive a 2D hash from the 1D table.
	a := float64(perm(x)) + y
	b := float64(perm(x+1)) + y
	aa := perm(a)
	ab := perm(a + 1)
	ba := perm(b)
	bb := perm(b + 1)

	// Blend results from the 4 corners of the cell.
	return lerp(
		v,
		lerp(u, grad(aa, xRel, yRel), grad(ba, xRel-1.0, yRel)),
		lerp(u, grad(ab, xRel, yRel-1.0), grad(bb, xRel-1.0, yRel-1.0)),
	)
}

// perm looks up the permutation table with wrapping.
func perm(index float64) uint8 {
	return permutation[int(index)&255]
}
