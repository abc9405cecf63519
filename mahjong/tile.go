package mahjong

import (
	"strconv"
	"strings"
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileZhong Tile = MakeTile(ColorDragon, 0) // 中
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileBai   Tile = MakeTile(ColorDragon, 2) // 白
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
)

// 十三幺参照牌：三门幺九加全部字牌
var orphanTiles = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	TileDong, TileNan, TileXi, TileBei,
	TileZhong, TileFa, TileBai,
}

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color) << 8) | (point << 4) | 1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.Color() == ColorDragon
}

func (t Tile) IsWind() bool { // 风牌
	return t.Color() == ColorWind
}

func (t Tile) IsExtra() bool { // 花牌+季牌
	return t.IsValid() && (t.Color() == ColorFlower || t.Color() == ColorSeason)
}

// IsTerminal 幺九数牌
func (t Tile) IsTerminal() bool {
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	case ColorWind:
		names := []string{"东", "南", "西", "北"}
		return names[p]
	case ColorDragon:
		names := []string{"中", "发", "白"}
		return names[p]
	case ColorFlower:
		names := []string{"梅", "兰", "竹", "菊"}
		return names[p]
	case ColorSeason:
		names := []string{"春", "夏", "秋", "冬"}
		return names[p]
	default:
		return ""
	}
}

var colorNames = [ColorEnd]string{"wan", "zhu", "tong", "feng", "long", "hua", "gui"}

// String 渲染为suit/number形式，便于日志与用例
func (t Tile) String() string {
	if !t.IsValid() {
		return "null"
	}
	return colorNames[t.Color()] + "/" + strconv.Itoa(t.Point()+1)
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	names := make([]string, len(tiles))
	for i, tile := range tiles {
		names[i] = tile.String()
	}
	return strings.Join(names, "|")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tile(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

var colorByName = map[string]EColor{
	"wan":  ColorCharacter,
	"zhu":  ColorBamboo,
	"tong": ColorDot,
	"feng": ColorWind,
	"long": ColorDragon,
	"hua":  ColorFlower,
	"gui":  ColorSeason,
}

// ParseTile 解析suit/number形式
func ParseTile(name string) Tile {
	part := strings.SplitN(name, "/", 2)
	if len(part) != 2 {
		return TileNull
	}
	color, ok := colorByName[part[0]]
	if !ok {
		return TileNull
	}
	num, err := strconv.Atoi(part[1])
	if err != nil || num < 1 || num > PointCountByColor[color] {
		return TileNull
	}
	return MakeTile(color, num-1)
}

// ParseTiles 解析以|分隔的多张牌
func ParseTiles(names string) []Tile {
	parts := strings.Split(names, "|")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		res[i] = ParseTile(name)
	}
	return res
}

func makeTiles(t Tile, count int) []Tile {
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
