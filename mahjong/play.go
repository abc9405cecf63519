package mahjong

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// TurnEnding 一轮的去向，串起相邻两轮
type TurnEnding interface {
	isTurnEnding()
}

// HandStart 开局，庄家先行
type HandStart struct {
	Seat int32
}

// NextSeat 顺延到下家；Offered表示弃牌已在仲裁中询问过。
// 引擎的仲裁覆盖全部三家，所以引擎产出的NextSeat恒为已询问，
// 下家直接摸牌；该位留给外部构造续局快照时区分
type NextSeat struct {
	Discard  Tile
	Seat     int32
	PrevSeat int32
	Offered  bool
}

// JumpSeat 弃牌被claim，行动权跳到claim方
type JumpSeat struct {
	Discard    Tile
	Seat       int32
	PrevSeat   int32
	JumpedWith *Meld
}

// TurnTied 牌墙摸空，流局
type TurnTied struct{}

// TurnWon 有人胡牌
type TurnWon struct {
	Winner int32
	Wu     *Wu
}

func (HandStart) isTurnEnding() {}
func (NextSeat) isTurnEnding()  {}
func (JumpSeat) isTurnEnding()  {}
func (TurnTied) isTurnEnding()  {}
func (TurnWon) isTurnEnding()   {}

// Play 牌局共享状态，只由引擎按当前行动座位改写
type Play struct {
	rule       *Rule
	dealer     *Dealer
	prevailing int32
	banker     int32
	curSeat    int32
	playData   []*PlayData
	history    []Action
	discards   []Tile
	discarders []int32
	turnCount  int

	// 不随撤回减少的累计出牌数，地胡判定用
	discardTotal   int
	firstDiscarder int32

	// 包牌记录：胡牌方 -> 放牌方
	twelvePiece map[int32]int32
	gaveDragon  map[int32]int32
	gaveKong    map[int32]int32
}

func NewPlay(rule *Rule, prevailing, banker int32) *Play {
	p := &Play{
		rule:           rule,
		dealer:         NewDealer(),
		prevailing:     prevailing,
		banker:         banker,
		curSeat:        SeatNull,
		playData:       make([]*PlayData, SeatCount),
		history:        make([]Action, 0),
		discards:       make([]Tile, 0),
		discarders:     make([]int32, 0),
		firstDiscarder: SeatNull,
		twelvePiece:    make(map[int32]int32),
		gaveDragon:     make(map[int32]int32),
		gaveKong:       make(map[int32]int32),
	}
	for i := range p.playData {
		p.playData[i] = NewPlayData(int32(i))
	}
	return p
}

func (p *Play) GetRule() *Rule {
	return p.rule
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	if !p.IsValidSeat(seat) {
		return nil
	}
	return p.playData[seat]
}

func (p *Play) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < SeatCount
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) SetCurSeat(seat int32) {
	p.curSeat = seat
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetPrevailing() int32 {
	return p.prevailing
}

func (p *Play) GetTurnCount() int {
	return p.turnCount
}

func (p *Play) NextTurn() {
	p.turnCount++
}

func (p *Play) GetHistory() []Action {
	return p.history
}

func (p *Play) GetDiscards() []Tile {
	return p.discards
}

// Deal 洗墙、发十三张、补花
func (p *Play) Deal() {
	p.dealer.Initialize()
	p.dealTiles()
}

// DealWall 用预置牌墙发牌，复盘用
func (p *Play) DealWall(wall []Tile) {
	p.dealer.SetWall(wall)
	p.dealTiles()
}

func (p *Play) dealTiles() {
	for _, data := range p.playData {
		for _, t := range p.dealer.Deal(TileCountInitNormal) {
			data.PutHandTile(t)
		}
	}
	for _, data := range p.playData {
		p.replaceBonuses(data)
		data.SortHand()
	}
}

// replaceBonuses 把花牌挪到花牌区并从墙尾补张
func (p *Play) replaceBonuses(data *PlayData) {
	for {
		replaced := false
		for _, t := range slices.Clone(data.GetHandTiles()) {
			if !t.IsExtra() {
				continue
			}
			data.RemoveHandTile(t, 1)
			data.PutBonusTile(t)
			p.addHistory(data.GetSeat(), OperateBonus, t)
			if back := p.dealer.DrawBack(); back != TileNull {
				data.PutHandTile(back)
			}
			replaced = true
		}
		if !replaced {
			return
		}
	}
}

// DrawFor 为seat摸一张非花牌，花牌入花牌区并补张；摸空返回TileNull
func (p *Play) DrawFor(seat int32) Tile {
	data := p.playData[seat]
	for {
		tile := p.dealer.DrawTile()
		if tile == TileNull {
			return TileNull
		}
		if tile.IsExtra() {
			data.PutBonusTile(tile)
			p.addHistory(seat, OperateBonus, tile)
			continue
		}
		data.PutHandTile(tile)
		p.addHistory(seat, OperateDraw, tile)
		return tile
	}
}

func (p *Play) Discard(seat int32, tile Tile) bool {
	if !p.playData[seat].Discard(tile) {
		logrus.Errorf("seat %d cannot discard %s", seat, tile)
		return false
	}
	p.discards = append(p.discards, tile)
	p.discarders = append(p.discarders, seat)
	p.discardTotal++
	if p.firstDiscarder == SeatNull {
		p.firstDiscarder = seat
	}
	p.addHistory(seat, OperateDiscard, tile)
	return true
}

// RetractDiscard 弃牌被claim后从公共弃牌史撤回
func (p *Play) RetractDiscard() {
	if len(p.discards) == 0 {
		return
	}
	p.discards = p.discards[:len(p.discards)-1]
	p.discarders = p.discarders[:len(p.discarders)-1]
}

// IsFirstDiscard 当前弃牌是否庄家打出的本局第一张（地胡判定）
func (p *Play) IsFirstDiscard() bool {
	return p.discardTotal == 1 && p.firstDiscarder == p.banker
}

// GetDiscardTotal 累计出牌数，撤回不回退
func (p *Play) GetDiscardTotal() int {
	return p.discardTotal
}

// ApplyClaim 把claim到的面子挂到座位上并记录包牌
//
// 杠的“此前无人见过这张牌”判定只认弃牌史：claim走的是刚打出的那张，
// 更早的历史里出现过同牌则不算包杠
func (p *Play) ApplyClaim(seat int32, meld *Meld, from int32) {
	data := p.playData[seat]
	discard := p.discards[len(p.discards)-1]

	if meld.Type == MeldKong && !slices.Contains(p.discards[:len(p.discards)-1], discard) {
		p.gaveKong[seat] = from
	}

	p.RetractDiscard()

	// 面子里除弃牌外的张数都得从手里扣，吃牌扣的是相邻两张
	skipped := false
	for _, t := range meld.Tiles {
		if t == discard && !skipped {
			skipped = true
			continue
		}
		data.RemoveHandTile(t, 1)
	}

	oldCount := len(data.GetMelds())
	oldDragons := data.DragonMeldComplete()
	claimed := *meld
	claimed.From = from
	data.AddMeld(&claimed)

	if oldCount == MeldCountFull-1 && len(data.GetMelds()) == MeldCountFull {
		p.twelvePiece[seat] = from
	}
	if !oldDragons && data.DragonMeldComplete() {
		p.gaveDragon[seat] = from
	}

	op := OperatePon
	switch meld.Type {
	case MeldChow:
		op = OperateChow
	case MeldKong:
		op = OperateKon
	}
	p.addHistory(seat, op, discard)
}

// DeclareKong 自摸阶段的暗杠或补杠
func (p *Play) DeclareKong(seat int32, meld *Meld) bool {
	data := p.playData[seat]
	tile := meld.Tiles[0]
	if meld.Concealed {
		if CountElement(data.GetHandTiles(), tile) < 4 {
			logrus.Errorf("seat %d cannot declare concealed kong of %s", seat, tile)
			return false
		}
		data.RemoveHandTile(tile, 4)
		data.AddMeld(meld)
	} else {
		pong := data.FindMeld(MeldPong, tile)
		if pong == nil || !data.HasTile(tile) {
			logrus.Errorf("seat %d cannot promote pong of %s", seat, tile)
			return false
		}
		data.RemoveMeld(MeldPong, tile)
		data.RemoveHandTile(tile, 1)
		promoted := *meld
		promoted.From = pong.From
		data.AddMeld(&promoted)
	}
	p.addHistory(seat, OperateKon, tile)
	return true
}

// ClearGaveKong 一摸未再开杠，杠链终止，包杠记录作废
func (p *Play) ClearGaveKong(seat int32) {
	delete(p.gaveKong, seat)
}

func (p *Play) GaveKong(seat int32) (int32, bool) {
	from, ok := p.gaveKong[seat]
	return from, ok
}

func (p *Play) GaveDragon(seat int32) (int32, bool) {
	from, ok := p.gaveDragon[seat]
	return from, ok
}

func (p *Play) TwelvePiece(seat int32) (int32, bool) {
	from, ok := p.twelvePiece[seat]
	return from, ok
}

func (p *Play) addHistory(seat int32, operate int, tile Tile) {
	p.history = append(p.history, Action{Seat: seat, Operate: operate, Tile: tile})
}
