package mahjong

import "slices"

// RemoveElements 删除tiles中最多count个等于tile的元素，返回新切片
func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if count > 0 && t == tile {
			count--
			continue
		}
		res = append(res, t)
	}
	return res
}

func CountElement(tiles []Tile, tile Tile) int {
	count := 0
	for _, t := range tiles {
		if t == tile {
			count++
		}
	}
	return count
}

func SortedClone(tiles []Tile) []Tile {
	res := slices.Clone(tiles)
	slices.Sort(res)
	return res
}
