package mahjong

import (
	"math/rand"
	"slices"
)

// AllTiles 全副144张：三门数牌、风箭、花季
func AllTiles() map[Tile]int {
	tiles := make(map[Tile]int)
	for color := ColorBegin; color < ColorEnd; color++ {
		for point := 0; point < PointCountByColor[color]; point++ {
			tiles[MakeTile(color, point)] = SameTileCountByColor[color]
		}
	}
	return tiles
}

// Dealer 牌墙
type Dealer struct {
	tileWall []Tile
}

func NewDealer() *Dealer {
	return &Dealer{
		tileWall: make([]Tile, 0),
	}
}

func (d *Dealer) Initialize() {
	tiles := AllTiles()
	total := 0
	for _, count := range tiles {
		total += count
	}
	d.tileWall = make([]Tile, total)

	// 填充并同时随机化牌墙
	i := 0
	for tile, count := range tiles {
		for range count {
			pos := rand.Intn(i + 1)
			if pos != i {
				d.tileWall[i] = d.tileWall[pos]
			}
			d.tileWall[pos] = tile
			i++
		}
	}
}

// SetWall 指定牌墙，用于复盘与测试
func (d *Dealer) SetWall(tiles []Tile) {
	d.tileWall = slices.Clone(tiles)
}

// DrawTile 从墙头抽牌
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

// DrawBack 从墙尾抽牌，花牌补张用
func (d *Dealer) DrawBack() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[len(d.tileWall)-1]
	d.tileWall = d.tileWall[:len(d.tileWall)-1]
	return tile
}

func (d *Dealer) Deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}

func (d *Dealer) HasTile(tile Tile) bool {
	return slices.Contains(d.tileWall, tile)
}
