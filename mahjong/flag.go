package mahjong

import "strings"

// WuFlag 胡牌番种位集
type WuFlag uint64

const (
	FlagChickenHand WuFlag = 0 // 鸡胡

	// 牌型
	FlagCommonHand      WuFlag = 1 << iota >> 1 // 平胡
	FlagAllInTriplets                           // 对对胡
	FlagMixedOneSuit                            // 混一色
	FlagAllOneSuit                              // 清一色
	FlagAllHonorTiles                           // 字一色
	FlagSmallDragons                            // 小三元
	FlagGreatDragons                            // 大三元
	FlagSmallWinds                              // 小四喜
	FlagGreatWinds                              // 大四喜
	FlagNineGates                               // 九莲宝灯
	FlagAllKongs                                // 十八罗汉
	FlagSelfTriplets                            // 坎坎胡
	FlagOrphans                                 // 清幺九
	FlagThirteenOrphans                         // 十三幺

	// 特定牌
	FlagSeatWind       // 门风刻
	FlagPrevailingWind // 圈风刻
	FlagRedDragon      // 红中刻
	FlagGreenDragon    // 发财刻
	FlagWhiteDragon    // 白板刻
	FlagMixedOrphans   // 混幺九

	// 胡牌方式
	FlagSelfDraw    // 自摸
	FlagAllFromWall // 门前清
	FlagRobbingKong // 抢杠
	FlagLastCatch   // 海底捞月
	FlagByKong      // 杠上开花
	FlagDoubleKong  // 连杠开花
	FlagHeavenly    // 天胡
	FlagEarthly     // 地胡

	// 包牌
	FlagTwelvePiece // 十二张包自摸
	FlagGaveDragon  // 包三元
	FlagGaveKong    // 包杠

	// 花牌
	FlagNoBonuses      // 无花
	FlagAlignedFlowers // 正花
	FlagAlignedSeasons // 正季
	FlagTableOfFlowers // 齐四花
	FlagTableOfSeasons // 齐四季
	FlagHandOfBonuses  // 八仙过海

	flagEnd
)

var flagNames = map[WuFlag]string{
	FlagCommonHand:      "CommonHand",
	FlagAllInTriplets:   "AllInTriplets",
	FlagMixedOneSuit:    "MixedOneSuit",
	FlagAllOneSuit:      "AllOneSuit",
	FlagAllHonorTiles:   "AllHonorTiles",
	FlagSmallDragons:    "SmallDragons",
	FlagGreatDragons:    "GreatDragons",
	FlagSmallWinds:      "SmallWinds",
	FlagGreatWinds:      "GreatWinds",
	FlagNineGates:       "NineGates",
	FlagAllKongs:        "AllKongs",
	FlagSelfTriplets:    "SelfTriplets",
	FlagOrphans:         "Orphans",
	FlagThirteenOrphans: "ThirteenOrphans",
	FlagSeatWind:        "SeatWind",
	FlagPrevailingWind:  "PrevailingWind",
	FlagRedDragon:       "RedDragon",
	FlagGreenDragon:     "GreenDragon",
	FlagWhiteDragon:     "WhiteDragon",
	FlagMixedOrphans:    "MixedOrphans",
	FlagSelfDraw:        "SelfDraw",
	FlagAllFromWall:     "AllFromWall",
	FlagRobbingKong:     "RobbingKong",
	FlagLastCatch:       "LastCatch",
	FlagByKong:          "ByKong",
	FlagDoubleKong:      "DoubleKong",
	FlagHeavenly:        "Heavenly",
	FlagEarthly:         "Earthly",
	FlagTwelvePiece:     "TwelvePiece",
	FlagGaveDragon:      "GaveDragon",
	FlagGaveKong:        "GaveKong",
	FlagNoBonuses:       "NoBonuses",
	FlagAlignedFlowers:  "AlignedFlowers",
	FlagAlignedSeasons:  "AlignedSeasons",
	FlagTableOfFlowers:  "TableOfFlowers",
	FlagTableOfSeasons:  "TableOfSeasons",
	FlagHandOfBonuses:   "HandOfBonuses",
}

// flagFaan 固定番值表
var flagFaan = map[WuFlag]int{
	FlagCommonHand:      1,
	FlagAllInTriplets:   3,
	FlagMixedOneSuit:    3,
	FlagAllOneSuit:      7,
	FlagAllHonorTiles:   10,
	FlagSmallDragons:    5,
	FlagGreatDragons:    8,
	FlagSmallWinds:      10,
	FlagGreatWinds:      13,
	FlagNineGates:       10,
	FlagAllKongs:        13,
	FlagSelfTriplets:    8,
	FlagOrphans:         10,
	FlagThirteenOrphans: 13,
	FlagSeatWind:        1,
	FlagPrevailingWind:  1,
	FlagRedDragon:       1,
	FlagGreenDragon:     1,
	FlagWhiteDragon:     1,
	FlagMixedOrphans:    1,
	FlagSelfDraw:        1,
	FlagAllFromWall:     1,
	FlagRobbingKong:     1,
	FlagLastCatch:       1,
	FlagByKong:          1,
	FlagDoubleKong:      8,
	FlagHeavenly:        13,
	FlagEarthly:         13,
	FlagTwelvePiece:     0,
	FlagGaveDragon:      0,
	FlagGaveKong:        0,
	FlagNoBonuses:       1,
	FlagAlignedFlowers:  1,
	FlagAlignedSeasons:  1,
	FlagTableOfFlowers:  2,
	FlagTableOfSeasons:  2,
	FlagHandOfBonuses:   8,
}

// flagSuppressions 强番覆盖弱番，算完全部番后按序应用一次
var flagSuppressions = []struct {
	when  WuFlag
	clear WuFlag
}{
	{FlagSmallWinds, FlagSeatWind | FlagPrevailingWind},
	{FlagSelfTriplets, FlagAllFromWall | FlagAllInTriplets},
	{FlagAllHonorTiles, FlagAllInTriplets},
	{FlagOrphans, FlagAllInTriplets},
	{FlagNineGates, FlagAllOneSuit | FlagAllFromWall},
	{FlagThirteenOrphans, FlagMixedOrphans | FlagOrphans},
	{FlagDoubleKong, FlagByKong},
}

func (f WuFlag) Has(flag WuFlag) bool {
	return f&flag != 0
}

// Suppress 应用番种覆盖表
func (f WuFlag) Suppress() WuFlag {
	for _, s := range flagSuppressions {
		if f.Has(s.when) {
			f &^= s.clear
		}
	}
	return f
}

// Faan 番值合计，不含覆盖处理
func (f WuFlag) Faan() int {
	points := 0
	for flag := WuFlag(1); flag < flagEnd; flag <<= 1 {
		if f.Has(flag) {
			points += flagFaan[flag]
		}
	}
	return points
}

func (f WuFlag) String() string {
	if f == FlagChickenHand {
		return "ChickenHand"
	}
	var names []string
	for flag := WuFlag(1); flag < flagEnd; flag <<= 1 {
		if f.Has(flag) {
			names = append(names, flagNames[flag])
		}
	}
	return strings.Join(names, "|")
}
