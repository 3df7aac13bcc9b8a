// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import (
	"math/bits"

	"github.com/pensool/pensool"
)

// TileSize is the edge length of a tile in pixels.
const TileSize = 64

// Tiles tracks which tiles of a canvas need redrawing, one bit per tile
// packed into uint64 words. Bit index = ty*tilesX + tx.
type Tiles struct {
	words  []uint64
	tilesX int
	tilesY int
}

// NewTiles creates a clean tile map covering a width×height canvas.
// Returns nil if the dimensions are not positive.
func NewTiles(width, height int) *Tiles {
	if width <= 0 || height <= 0 {
		return nil
	}
	tx := (width + TileSize - 1) / TileSize
	ty := (height + TileSize - 1) / TileSize
	return &Tiles{
		words:  make([]uint64, (tx*ty+63)/64),
		tilesX: tx,
		tilesY: ty,
	}
}

// Size returns the grid dimensions in tiles.
func (t *Tiles) Size() (tilesX, tilesY int) {
	return t.tilesX, t.tilesY
}

// Mark marks a single tile dirty. Out of range tiles are ignored.
func (t *Tiles) Mark(tx, ty int) {
	if tx < 0 || tx >= t.tilesX || ty < 0 || ty >= t.tilesY {
		return
	}
	idx := ty*t.tilesX + tx
	t.words[idx/64] |= 1 << (idx & 63)
}

// MarkBounds marks every tile that b touches. The part of b outside the
// canvas is ignored.
func (t *Tiles) MarkBounds(b pensool.Bounds) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	tx1 := max(floorDiv(b.X, TileSize), 0)
	ty1 := max(floorDiv(b.Y, TileSize), 0)
	tx2 := min(floorDiv(b.X+b.Width-1, TileSize), t.tilesX-1)
	ty2 := min(floorDiv(b.Y+b.Height-1, TileSize), t.tilesY-1)

	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			t.Mark(tx, ty)
		}
	}
}

// MarkAll marks every tile dirty.
func (t *Tiles) MarkAll() {
	total := t.tilesX * t.tilesY
	for i := range t.words {
		t.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		t.words[len(t.words)-1] = (uint64(1) << rem) - 1
	}
}

// IsDirty reports whether the tile at (tx, ty) is dirty.
func (t *Tiles) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= t.tilesX || ty < 0 || ty >= t.tilesY {
		return false
	}
	idx := ty*t.tilesX + tx
	return t.words[idx/64]&(1<<(idx&63)) != 0
}

// Count returns the number of dirty tiles.
func (t *Tiles) Count() int {
	n := 0
	for _, w := range t.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEachDirty calls fn with the pixel bounds of each dirty tile in
// row-major order.
func (t *Tiles) ForEachDirty(fn func(tile pensool.Bounds)) {
	for wi, w := range t.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			idx := wi*64 + bit
			tx, ty := idx%t.tilesX, idx/t.tilesX
			fn(pensool.Bounds{X: tx * TileSize, Y: ty * TileSize, Width: TileSize, Height: TileSize})
			w &^= 1 << bit
		}
	}
}

// Clear marks every tile clean.
func (t *Tiles) Clear() {
	clear(t.words)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
