package render

import "pixelfire/internal/core"

// FillRGBA converts packed strip colors into opaque RGBA pixels in buf. Extra
// buffer space is cleared to transparent black.
func FillRGBA(buf []byte, colors []core.Packed) {
	n := len(buf) / 4
	for i := 0; i < n; i++ {
		base := i * 4
		if i >= len(colors) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		r, g, b := colors[i].RGB()
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}

// MaxPreviewColumns bounds the width of the preview grid.
const MaxPreviewColumns = 60

// StripLayout folds a strip of n pixels into rows for preview windows.
func StripLayout(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = min(n, MaxPreviewColumns)
	rows = (n + cols - 1) / cols
	return cols, rows
}
