package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// PlayData 单个座位的牌局数据，只由引擎代表该座位改写
type PlayData struct {
	seat       int32
	handTiles  []Tile
	melds      []*Meld // 副露（含暗杠）
	bonusTiles []Tile
}

func NewPlayData(seat int32) *PlayData {
	return &PlayData{
		seat:       seat,
		handTiles:  make([]Tile, 0),
		melds:      make([]*Meld, 0),
		bonusTiles: make([]Tile, 0),
	}
}

func (p *PlayData) GetSeat() int32 {
	return p.seat
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetMelds() []*Meld {
	return p.melds
}

func (p *PlayData) GetBonusTiles() []Tile {
	return p.bonusTiles
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
	logger.Log.Debugf("seat %d hand: %s", p.seat, TilesName(p.handTiles))
}

func (p *PlayData) RemoveHandTile(tile Tile, count int) {
	p.handTiles = RemoveElements(p.handTiles, tile, count)
}

func (p *PlayData) PutBonusTile(tile Tile) {
	p.bonusTiles = append(p.bonusTiles, tile)
}

func (p *PlayData) SortHand() {
	slices.Sort(p.handTiles)
}

func (p *PlayData) HasTile(tile Tile) bool {
	return slices.Contains(p.handTiles, tile)
}

func (p *PlayData) Discard(tile Tile) bool {
	if !p.HasTile(tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	return true
}

// AddMeld 副露一组面子，组成它的手牌已被移除
func (p *PlayData) AddMeld(meld *Meld) {
	p.melds = append(p.melds, meld)
	logger.Log.Debugf("seat %d meld: %s", p.seat, meld)
}

// FindMeld 按变体和牌查副露
func (p *PlayData) FindMeld(typ EMeldType, tile Tile) *Meld {
	for _, m := range p.melds {
		if m.Type == typ && m.Tiles[0] == tile {
			return m
		}
	}
	return nil
}

// RemoveMeld 按牌找到并移除一组副露，碰转杠用
func (p *PlayData) RemoveMeld(typ EMeldType, tile Tile) *Meld {
	for i, m := range p.melds {
		if m.Type == typ && m.Tiles[0] == tile {
			p.melds = append(p.melds[:i], p.melds[i+1:]...)
			return m
		}
	}
	return nil
}

// ClaimMelds 这张弃牌能组成的全部面子，吃仅对下家开放
func (p *PlayData) ClaimMelds(discard Tile, chowAllowed bool) []*Meld {
	melds := make([]*Meld, 0)
	count := CountElement(p.handTiles, discard)
	if count >= 2 {
		if meld, err := NewPong(makeTiles(discard, 3)...); err == nil {
			melds = append(melds, meld)
		}
	}
	if count >= 3 {
		if meld, err := NewKong(makeTiles(discard, 4)...); err == nil {
			melds = append(melds, meld)
		}
	}
	if chowAllowed && discard.IsSuit() {
		color, point := discard.Info()
		for left := max(point-2, 0); left <= min(point, PointCountByColor[color]-3); left++ {
			ok := true
			for i := range 3 {
				t := MakeTile(color, left+i)
				if t != discard && !p.HasTile(t) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if meld, err := NewChow(MakeTile(color, left), MakeTile(color, left+1), MakeTile(color, left+2)); err == nil {
				melds = append(melds, meld)
			}
		}
	}
	SortMelds(melds)
	return melds
}

// ConcealedKongs 手中四张成暗杠的候选
func (p *PlayData) ConcealedKongs() []*Meld {
	counts := make(map[Tile]int)
	for _, t := range p.handTiles {
		counts[t]++
	}
	melds := make([]*Meld, 0)
	for tile, count := range counts {
		if count < 4 {
			continue
		}
		if meld, err := NewKong(makeTiles(tile, 4)...); err == nil {
			meld.Concealed = true
			melds = append(melds, meld)
		}
	}
	SortMelds(melds)
	return melds
}

// PongPromotions 已碰的刻子摸到第四张可补杠的候选
func (p *PlayData) PongPromotions() []*Meld {
	melds := make([]*Meld, 0)
	for _, m := range p.melds {
		if m.Type != MeldPong || !p.HasTile(m.Tiles[0]) {
			continue
		}
		t := m.Tiles[0]
		if kong, err := NewKong(makeTiles(t, 4)...); err == nil {
			kong.From = m.From
			melds = append(melds, kong)
		}
	}
	SortMelds(melds)
	return melds
}

// DragonMeldComplete 三副箭刻是否齐备
func (p *PlayData) DragonMeldComplete() bool {
	var dragons int
	for _, m := range p.melds {
		if m.Type != MeldChow && m.Tiles[0].IsDragon() {
			dragons |= 1 << m.Tiles[0].Point()
		}
	}
	return dragons == 0x7
}

// BonusFlags 花牌番种
func (p *PlayData) BonusFlags() WuFlag {
	var flags WuFlag
	if len(p.bonusTiles) == 0 {
		return FlagNoBonuses
	}
	var flowers, seasons int
	for _, t := range p.bonusTiles {
		if t.Color() == ColorFlower {
			flowers |= 1 << t.Point()
			if t.Point() == int(p.seat) {
				flags |= FlagAlignedFlowers
			}
		} else if t.Color() == ColorSeason {
			seasons |= 1 << t.Point()
			if t.Point() == int(p.seat) {
				flags |= FlagAlignedSeasons
			}
		}
	}
	if flowers == 0xF {
		flags |= FlagTableOfFlowers
	}
	if seasons == 0xF {
		flags |= FlagTableOfSeasons
	}
	if flowers == 0xF && seasons == 0xF {
		flags |= FlagHandOfBonuses
	}
	return flags
}
