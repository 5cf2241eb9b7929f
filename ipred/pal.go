package ipred

import "github.com/deepteams/av1"

// palPred expands per-pixel palette indices into samples. idx is row-major
// with stride w; callers guarantee every index is in range for pal.
func palPred[P av1.Pixel](dst []P, stride int, pal []P, idx []uint8, w, h int) {
	for y := 0; y < h; y++ {
		row := dst[y*stride : y*stride+w]
		for x := range row {
			row[x] = pal[idx[y*w+x]]
		}
	}
}
