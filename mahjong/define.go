package mahjong

const (
	SeatNull int32 = -1
)

const (
	SeatEast int32 = iota
	SeatSouth
	SeatWest
	SeatNorth
)

const SeatCount int32 = 4

const (
	TileCountInitNormal = 13
	TileCountWinMin     = 14
)

// MeldCountFull 一手牌的面子数（不含将）
const MeldCountFull = 4

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorFlower                      // 花牌
	ColorSeason                      // 季牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3, 4, 4}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4, 1, 1}

const (
	OperateNone    = 0
	OperateDiscard = 1 << (iota - 1) // 出牌
	OperateDraw                      // 摸牌
	OperateChow                      // 吃
	OperatePon                       // 碰
	OperateKon                       // 杠
	OperateHu                        // 胡
	OperateBonus                     // 补花
)

var OperateNames = map[int]string{
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateHu:      "Win",
	OperateBonus:   "Bonus",
}

// Action 牌局操作记录
type Action struct {
	Seat    int32
	Operate int
	Tile    Tile
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// SeatDistance 从from按出牌顺序数到to的步数
func SeatDistance(from, to int32) int32 {
	return (to - from + SeatCount) % SeatCount
}
