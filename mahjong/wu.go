package mahjong

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// MeldOrphans 十三幺伪面子，只存在于Wu的拆解中
const MeldOrphans EMeldType = MeldKong + 1

// Wu 一副胡牌候选：手牌+副露+成牌上下文
// 构造要么得到非空拆解集，要么失败
//
// 对歧义大的手牌（如同花色长连刻）拆解是组合爆炸的搜索，
// 每次试探可达百万级组合，调用方按可变耗时对待
type Wu struct {
	Tiles     []Tile  // 手牌（含成牌张），有序
	Melds     []*Meld // 副露
	Arrived   Tile
	Discarder int32
	BaseFlags WuFlag

	decomps [][]*Meld
}

// NewWu 校验并枚举全部合法拆解
func NewWu(concealed []Tile, exposed []*Meld, arrived Tile, discarder int32, flags WuFlag) (*Wu, error) {
	w := &Wu{
		Tiles:     SortedClone(concealed),
		Melds:     slices.Clone(exposed),
		Arrived:   arrived,
		Discarder: discarder,
		BaseFlags: flags,
	}
	total := len(w.Tiles)
	for _, m := range w.Melds {
		total += len(m.Tiles)
	}
	if total < TileCountWinMin || total > TileCountWinMin+MeldCountFull {
		return nil, fmt.Errorf("%w: %d tiles", ErrNotWinningHand, total)
	}
	for _, t := range w.Tiles {
		if !t.IsValid() || t.IsExtra() {
			return nil, fmt.Errorf("%w: bonus tile %s in hand", ErrNotWinningHand, t)
		}
	}
	w.decomps = w.decompose()
	if len(w.decomps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotWinningHand, TilesName(w.Tiles))
	}
	return w, nil
}

// Decompositions 全部拆解，每个均含副露与将
func (w *Wu) Decompositions() [][]*Meld {
	return w.decomps
}

func (w *Wu) AllTiles() []Tile {
	tiles := slices.Clone(w.Tiles)
	for _, m := range w.Melds {
		tiles = append(tiles, m.Tiles...)
	}
	slices.Sort(tiles)
	return tiles
}

type meldCand struct {
	meld *Meld
	mask int // 占用手牌下标位集
	size int
}

func (w *Wu) decompose() [][]*Meld {
	need := MeldCountFull - len(w.Melds)
	dedup := make(map[string][]*Meld)

	if need >= 0 {
		eyesSeen := make(map[Tile]struct{})
		for i := 0; i+1 < len(w.Tiles); i++ {
			if w.Tiles[i] != w.Tiles[i+1] {
				continue
			}
			if _, ok := eyesSeen[w.Tiles[i]]; ok {
				continue
			}
			eyes, err := NewEyes(w.Tiles[i], w.Tiles[i+1])
			if err != nil {
				continue
			}
			eyesSeen[w.Tiles[i]] = struct{}{}

			rest := make([]Tile, 0, len(w.Tiles)-2)
			rest = append(rest, w.Tiles[:i]...)
			rest = append(rest, w.Tiles[i+2:]...)
			cands := meldCandidates(rest)
			if len(cands) > 50 {
				logrus.Debugf("wu search: %d candidate melds over %d tiles", len(cands), len(rest))
			}
			for _, combo := range coverCombos(cands, need, len(rest)) {
				choice := append(combo, w.Melds...)
				choice = append(choice, eyes)
				SortMelds(choice)
				key := choiceKey(choice)
				if _, ok := dedup[key]; !ok {
					dedup[key] = choice
				}
			}
		}
	}

	if w.isThirteenOrphans() {
		choice := []*Meld{{Type: MeldOrphans, Tiles: slices.Clone(w.Tiles), From: SeatNull}}
		dedup[choiceKey(choice)] = choice
	}

	res := make([][]*Meld, 0, len(dedup))
	for _, choice := range dedup {
		res = append(res, choice)
	}
	slices.SortFunc(res, func(a, b []*Meld) int {
		return strings.Compare(choiceKey(a), choiceKey(b))
	})
	return res
}

// meldCandidates 枚举rest上所有可成的刻/杠/顺及其占用下标
// 同一组三张能补成杠时取杠
func meldCandidates(rest []Tile) []meldCand {
	cands := make([]meldCand, 0)
	seen := make(map[int]struct{})
	n := len(rest)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				mask := 1<<i | 1<<j | 1<<k
				if _, ok := seen[mask]; ok {
					continue
				}
				meld := tripletMeld(rest[i], rest[j], rest[k])
				if meld == nil {
					continue
				}
				size := 3
				if meld.Type == MeldPong {
					for l := k + 1; l < n; l++ {
						kong, err := NewKong(rest[i], rest[j], rest[k], rest[l])
						if err != nil {
							continue
						}
						kmask := mask | 1<<l
						if _, ok := seen[kmask]; ok {
							break
						}
						meld, mask, size = kong, kmask, 4
						break
					}
				}
				if _, ok := seen[mask]; ok {
					continue
				}
				seen[mask] = struct{}{}
				cands = append(cands, meldCand{meld: meld, mask: mask, size: size})
			}
		}
	}
	return cands
}

// tripletMeld 三张牌试成刻子或顺子
func tripletMeld(a, b, c Tile) *Meld {
	if meld, err := NewPong(a, b, c); err == nil {
		return meld
	}
	if meld, err := NewChow(a, b, c); err == nil {
		return meld
	}
	return nil
}

// coverCombos 选出need个互不相交且恰好盖满rest的候选组合
func coverCombos(cands []meldCand, need, total int) [][]*Meld {
	var res [][]*Meld
	var pick func(start, used, covered int, cur []*Meld)
	pick = func(start, used, covered int, cur []*Meld) {
		if len(cur) == need {
			if covered == total {
				res = append(res, slices.Clone(cur))
			}
			return
		}
		for i := start; i < len(cands); i++ {
			c := cands[i]
			if used&c.mask != 0 {
				continue
			}
			pick(i+1, used|c.mask, covered+c.size, append(cur, c.meld))
		}
	}
	if need == 0 {
		if total == 0 {
			res = append(res, []*Meld{})
		}
		return res
	}
	pick(0, 0, 0, make([]*Meld, 0, need))
	return res
}

// isThirteenOrphans 三门幺九与七种字牌齐备的十四张门清手牌
func (w *Wu) isThirteenOrphans() bool {
	if len(w.Melds) != 0 || len(w.Tiles) != TileCountWinMin {
		return false
	}
	for _, t := range orphanTiles {
		if !slices.Contains(w.Tiles, t) {
			return false
		}
	}
	return true
}

func choiceKey(choice []*Meld) string {
	keys := make([]string, len(choice))
	for i, m := range choice {
		keys[i] = m.Key()
	}
	return strings.Join(keys, ",")
}

// Flags 对一个选定拆解推导全部番种
// seatWind/prevailingWind传SeatNull表示上下文未知，不算风刻
func (w *Wu) Flags(choice []*Meld, seatWind, prevailingWind int32) WuFlag {
	types := w.BaseFlags
	if len(choice) == 1 && choice[0].Type == MeldOrphans {
		types |= FlagThirteenOrphans
		if len(w.Melds) == 0 {
			types |= FlagAllFromWall
		}
		return w.tileFlags(types, choice).Suppress()
	}

	allChow, allTriplet, allKong := true, true, true
	for _, m := range choice {
		if m.Type != MeldChow && m.Type != MeldEyes {
			allChow = false
		}
		if m.Type != MeldPong && m.Type != MeldKong && m.Type != MeldEyes {
			allTriplet = false
		}
		if m.Type != MeldKong && m.Type != MeldEyes {
			allKong = false
		}
	}
	if allChow {
		types |= FlagCommonHand
	}
	if allTriplet {
		types |= FlagAllInTriplets
	}
	if allKong {
		types |= FlagAllKongs
	}

	types |= dragonWindFlags(choice)

	if len(w.Melds) == 0 && types.Has(FlagAllInTriplets) {
		if types.Has(FlagSelfDraw) || (w.Arrived.IsValid() && arrivedOnlyInEyes(choice, w.Arrived)) {
			types |= FlagSelfTriplets
		}
	}

	orphans := true
	for _, m := range choice {
		if m.Type == MeldChow || !m.Tiles[0].IsSuit() || !m.Tiles[0].IsTerminal() {
			orphans = false
			break
		}
	}
	if orphans {
		types |= FlagOrphans
	}

	for _, m := range choice {
		if m.Type != MeldPong && m.Type != MeldKong {
			continue
		}
		switch m.Tiles[0] {
		case TileZhong:
			types |= FlagRedDragon
		case TileFa:
			types |= FlagGreenDragon
		case TileBai:
			types |= FlagWhiteDragon
		}
		if seatWind != SeatNull && m.Tiles[0] == MakeTile(ColorWind, int(seatWind)) {
			types |= FlagSeatWind
		}
		if prevailingWind != SeatNull && m.Tiles[0] == MakeTile(ColorWind, int(prevailingWind)) {
			types |= FlagPrevailingWind
		}
	}

	if len(w.Melds) == 0 {
		types |= FlagAllFromWall
	}
	return w.tileFlags(types, choice).Suppress()
}

// tileFlags 只看整手牌的番：一色类、混幺九、九莲宝灯
func (w *Wu) tileFlags(types WuFlag, choice []*Meld) WuFlag {
	allTiles := w.AllTiles()

	honor := false
	suit := ColorUndefined
	oneSuit := true
	for _, t := range allTiles {
		if t.IsHonor() {
			honor = true
			continue
		}
		if suit != ColorUndefined && t.Color() != suit {
			oneSuit = false
			break
		}
		suit = t.Color()
	}
	if oneSuit {
		switch {
		case honor && suit == ColorUndefined:
			types |= FlagAllHonorTiles
		case !honor:
			types |= FlagAllOneSuit
		default:
			types |= FlagMixedOneSuit
		}
	}

	mixedOrphans := true
	for _, t := range allTiles {
		if !t.IsHonor() && !t.IsTerminal() {
			mixedOrphans = false
			break
		}
	}
	if mixedOrphans {
		types |= FlagMixedOrphans
	}

	// 九莲宝灯：单花色对[3,1,1,1,1,1,1,1,3]模板恰好多一张
	if oneSuit && !honor && suit != ColorUndefined {
		goals := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
		var counts [9]int
		for _, t := range allTiles {
			counts[t.Point()]++
		}
		slack := 0
		gates := true
		for i := range goals {
			switch counts[i] {
			case goals[i]:
			case goals[i] + 1:
				slack++
			default:
				gates = false
			}
		}
		if gates && slack == 1 {
			types |= FlagNineGates
		}
	}
	return types
}

// arrivedOnlyInEyes 成牌张只出现在将中
func arrivedOnlyInEyes(choice []*Meld, arrived Tile) bool {
	inEyes := false
	for _, m := range choice {
		if m.Type == MeldEyes {
			if !m.Has(arrived) {
				return false
			}
			inEyes = true
		} else if m.Has(arrived) {
			return false
		}
	}
	return inEyes
}

// dragonWindFlags 三元/四喜
func dragonWindFlags(choice []*Meld) WuFlag {
	var types WuFlag
	var dragons [3]EMeldType
	var winds [4]EMeldType
	dragonSet, windSet := 0, 0
	dragonEyes, windEyes := false, false
	for _, m := range choice {
		if m.Type == MeldChow {
			continue
		}
		t := m.Tiles[0]
		if t.IsDragon() {
			dragons[t.Point()] = m.Type
			dragonSet |= 1 << t.Point()
		} else if t.IsWind() {
			winds[t.Point()] = m.Type
			windSet |= 1 << t.Point()
		}
	}
	for _, typ := range dragons {
		if typ == MeldEyes {
			dragonEyes = true
		}
	}
	for _, typ := range winds {
		if typ == MeldEyes {
			windEyes = true
		}
	}
	if dragonSet == 0x7 {
		if dragonEyes {
			types |= FlagSmallDragons
		} else {
			types |= FlagGreatDragons
		}
	}
	if windSet == 0xF {
		if windEyes {
			types |= FlagSmallWinds
		} else {
			types |= FlagGreatWinds
		}
	}
	return types
}

// Faan 某一拆解的番值与番种
func (w *Wu) Faan(choice []*Meld, seatWind, prevailingWind int32) (int, WuFlag) {
	flags := w.Flags(choice, seatWind, prevailingWind)
	return flags.Faan(), flags
}

// MaxFaan 取番值最大的拆解
func (w *Wu) MaxFaan(seatWind, prevailingWind int32) ([]*Meld, int, WuFlag) {
	var best []*Meld
	bestFaan := -1
	var bestFlags WuFlag
	for _, choice := range w.decomps {
		faan, flags := w.Faan(choice, seatWind, prevailingWind)
		if faan > bestFaan {
			best, bestFaan, bestFlags = choice, faan, flags
		}
	}
	return best, bestFaan, bestFlags
}
