package mahjong

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Rule 一桌的规则配置
type Rule struct {
	MinFaan    int
	BaseScore  int64
	ScoreTable map[int]int64
}

// 常见的几套番数-注码表，按表名取用
var StockTables = map[string]map[int]int64{
	"enwp": {
		1: 1, 2: 1, 3: 1,
		4: 2, 5: 2, 6: 2,
		7: 4, 8: 4, 9: 4,
		10: 8,
	},
	"zhwp": {
		0: 1, 1: 2, 2: 4, 3: 8,
		4: 16, 5: 24, 6: 32, 7: 48,
		8: 64, 9: 96, 10: 128, 11: 192,
		12: 256, 13: 384,
	},
	"random_app": {
		1: 1, 2: 1, 3: 1,
		4: 2, 5: 3, 6: 4,
		7: 6, 8: 8, 9: 11,
		10: 13,
	},
}

func NewRule() *Rule {
	return &Rule{
		MinFaan:    3,
		BaseScore:  1,
		ScoreTable: StockTables["random_app"],
	}
}

// Load 从viper读取规则，缺省值保持不动
func (r *Rule) Load(v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet("min_faan") {
		r.MinFaan = v.GetInt("min_faan")
	}
	if v.IsSet("base_score") {
		r.BaseScore = v.GetInt64("base_score")
	}
	if name := v.GetString("score_table"); name != "" {
		table, ok := StockTables[name]
		if !ok {
			logrus.Warnf("unknown score table %s, keep current", name)
			return
		}
		r.ScoreTable = table
	}
}

// Stake 按番数查注码，超过表上限按封顶算，不足起胡番为0
func (r *Rule) Stake(faan int) int64 {
	if faan < r.MinFaan {
		return 0
	}
	max := 0
	for f := range r.ScoreTable {
		if f > max {
			max = f
		}
	}
	if faan > max {
		faan = max
	}
	return r.ScoreTable[faan] * r.BaseScore
}
