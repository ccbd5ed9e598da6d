package compute

import "image"

// SplitRows partitions a w x h pixel grid into count horizontal bands.
// The bands cover every pixel exactly once; when h does not divide evenly
// the remainder is spread one row at a time across the leading bands, so no
// band differs from another by more than one row. Bands beyond h rows simply
// do not materialize, so the returned slice may be shorter than count.
func SplitRows(w, h, count int) []image.Rectangle {
	if w < 1 || h < 1 {
		panic("compute: grid dimensions must be positive")
	}
	if count < 1 {
		panic("compute: band count must be positive")
	}

	if count > h {
		count = h
	}

	base := h / count
	extra := h % count

	tiles := make([]image.Rectangle, 0, count)
	y := 0
	for i := 0; i < count; i++ {
		rows := base
		if i < extra {
			rows++
		}
		tiles = append(tiles, image.Rect(0, y, w, y+rows))
		y += rows
	}
	return tiles
}
