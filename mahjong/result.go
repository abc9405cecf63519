package mahjong

// HandEnding 一局的结算结果
type HandEnding interface {
	isHandEnding()
}

// GoulashEnding 流局，无人得分
type GoulashEnding struct{}

func (GoulashEnding) isHandEnding() {}

func (GoulashEnding) Points(rule *Rule) ([]int64, WuFlag) {
	return make([]int64, SeatCount), FlagChickenHand
}

// NormalEnding 闲家胡牌
//
// Discarder已在收局时改写为实际买单方：包牌时指向放杠/放龙/喂满铺的那家
type NormalEnding struct {
	Winner     int32
	Wu         *Wu
	Choice     []*Meld
	SeatWind   int32
	Prevailing int32
	Penalized  bool
}

func (NormalEnding) isHandEnding() {}

func (e *NormalEnding) Flags() WuFlag {
	return e.Wu.Flags(e.Choice, e.SeatWind, e.Prevailing)
}

func (e *NormalEnding) Faan() (int, WuFlag) {
	return e.Wu.Faan(e.Choice, e.SeatWind, e.Prevailing)
}

// Points 按规则表折算四家输赢，番数不够起胡则四家皆零
//
// 包牌买单方付三倍；点炮付两倍；自摸三家各付一倍
func (e *NormalEnding) Points(rule *Rule) ([]int64, WuFlag) {
	faan, flags := e.Faan()
	points := make([]int64, SeatCount)
	stake := rule.Stake(faan)
	if stake == 0 {
		return points, flags
	}
	switch {
	case e.Penalized:
		points[e.Winner] += stake * 3
		points[e.Wu.Discarder] -= stake * 3
	case e.Wu.Discarder == SeatNull:
		points[e.Winner] += stake * 3
		for seat := int32(0); seat < SeatCount; seat++ {
			if seat != e.Winner {
				points[seat] -= stake
			}
		}
	default:
		points[e.Winner] += stake * 2
		points[e.Wu.Discarder] -= stake * 2
	}
	return points, flags
}

// DealerEnding 庄家胡牌，计分同NormalEnding，牌局层据此决定连庄
type DealerEnding struct {
	NormalEnding
}

func (DealerEnding) isHandEnding() {}
