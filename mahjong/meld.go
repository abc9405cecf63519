package mahjong

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type EMeldType int

const (
	MeldEyes EMeldType = iota // 将
	MeldChow                  // 顺子
	MeldPong                  // 刻子
	MeldKong                  // 杠
)

var meldNames = map[EMeldType]string{
	MeldEyes: "Eyes",
	MeldChow: "Chow",
	MeldPong: "Pong",
	MeldKong: "Kong",
}

var meldSizes = map[EMeldType]int{
	MeldEyes: 2,
	MeldChow: 3,
	MeldPong: 3,
	MeldKong: 4,
}

// Meld 一组校验过的牌，构造成功后不再变化
type Meld struct {
	Type      EMeldType
	Tiles     []Tile
	From      int32 // 被claim方座位，非claim得来为SeatNull
	Concealed bool
}

func NewEyes(tiles ...Tile) (*Meld, error) {
	return newMeld(MeldEyes, tiles)
}

func NewChow(tiles ...Tile) (*Meld, error) {
	return newMeld(MeldChow, tiles)
}

func NewPong(tiles ...Tile) (*Meld, error) {
	return newMeld(MeldPong, tiles)
}

func NewKong(tiles ...Tile) (*Meld, error) {
	return newMeld(MeldKong, tiles)
}

func newMeld(typ EMeldType, tiles []Tile) (*Meld, error) {
	if len(tiles) != meldSizes[typ] {
		return nil, fmt.Errorf("%w: %s must be %d tiles, got %d",
			ErrInvalidMeld, meldNames[typ], meldSizes[typ], len(tiles))
	}
	sorted := SortedClone(tiles)
	for _, t := range sorted {
		if !t.IsValid() || t.IsExtra() {
			return nil, fmt.Errorf("%w: no bonus tiles in a meld: %s", ErrInvalidMeld, t)
		}
	}
	switch typ {
	case MeldChow:
		if err := checkChow(sorted); err != nil {
			return nil, err
		}
	default:
		if err := checkSameTile(sorted); err != nil {
			return nil, fmt.Errorf("%s: %w", meldNames[typ], err)
		}
	}
	return &Meld{Type: typ, Tiles: sorted, From: SeatNull}, nil
}

// checkSameTile 刻子/杠/将共用的同牌校验
func checkSameTile(tiles []Tile) error {
	for _, t := range tiles[1:] {
		if t != tiles[0] {
			return fmt.Errorf("%w: must be the same tile: %s != %s", ErrInvalidMeld, t, tiles[0])
		}
	}
	return nil
}

func checkChow(tiles []Tile) error {
	if !tiles[0].IsSuit() {
		return fmt.Errorf("%w: chow must be simples, got %s", ErrInvalidMeld, tiles[0])
	}
	color, point := tiles[0].Info()
	for i, t := range tiles {
		if t.Color() != color || t.Point() != point+i {
			return fmt.Errorf("%w: chow must be consecutive: %s", ErrInvalidMeld, TilesName(tiles))
		}
	}
	return nil
}

func (m *Meld) Has(tile Tile) bool {
	return slices.Contains(m.Tiles, tile)
}

// Key 按(变体,牌)去重用
func (m *Meld) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(m.Type)))
	for _, t := range m.Tiles {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(t)))
	}
	return sb.String()
}

// String 杠的中间两张盖住显示
func (m *Meld) String() string {
	if m.Type == MeldKong {
		return m.Tiles[0].String() + "|--|" + m.Tiles[3].String()
	}
	return TilesName(m.Tiles)
}

// claimRank 按Wu > Kong > Pong > Chow > Eyes排序，数值越小优先级越高
// Wu不是Meld，占用rank 0
func (m *Meld) claimRank() int {
	switch m.Type {
	case MeldKong:
		return 1
	case MeldPong:
		return 2
	case MeldChow:
		return 3
	default:
		return 4
	}
}

// CompareMelds 面子全序：先变体优先级再比牌
func CompareMelds(a, b *Meld) int {
	if a.claimRank() != b.claimRank() {
		return a.claimRank() - b.claimRank()
	}
	return slices.Compare(a.Tiles, b.Tiles)
}

// SortMelds 规范化一组面子的顺序
func SortMelds(melds []*Meld) {
	slices.SortFunc(melds, CompareMelds)
}
