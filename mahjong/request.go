package mahjong

// Request 引擎暂停时抛给某个座位的问题
type Request interface {
	GetSeat() int32
}

// Answer 座位对Request的回应
type Answer interface {
	isAnswer()
}

type baseReq struct {
	Seat int32
}

func (r baseReq) GetSeat() int32 {
	return r.Seat
}

// DiscardReq 询问打哪张
type DiscardReq struct {
	baseReq
}

// SelfDrawReq 摸牌后可自摸，要不要胡
type SelfDrawReq struct {
	baseReq
	Wu *Wu
}

// KongReq 摸牌后可开杠，Melds列出可选的暗杠与补杠
type KongReq struct {
	baseReq
	Melds []*Meld
}

// ClaimReq 别家弃牌，本座位可吃碰杠胡
type ClaimReq struct {
	baseReq
	Arrived Tile
	Melds   []*Meld
	Wu      *Wu
}

// RobKongReq 别家补杠，问要不要抢杠胡
type RobKongReq struct {
	baseReq
	Arrived Tile
	Wu      *Wu
}

// ChooseWuReq 胡牌有多种拆法时让胡家挑一种
type ChooseWuReq struct {
	baseReq
	Wu *Wu
}

// TileAnswer 回应DiscardReq
type TileAnswer struct {
	Tile Tile
}

// ClaimAnswer 回应ClaimReq：Win优先于Meld，两者皆空为放弃
type ClaimAnswer struct {
	Win  bool
	Meld *Meld
}

// MeldAnswer 回应KongReq，nil为放弃
type MeldAnswer struct {
	Meld *Meld
}

// BoolAnswer 回应SelfDrawReq、RobKongReq
type BoolAnswer struct {
	Yes bool
}

// ChoiceAnswer 回应ChooseWuReq
type ChoiceAnswer struct {
	Index int
}

func (TileAnswer) isAnswer()   {}
func (ClaimAnswer) isAnswer()  {}
func (MeldAnswer) isAnswer()   {}
func (BoolAnswer) isAnswer()   {}
func (ChoiceAnswer) isAnswer() {}
