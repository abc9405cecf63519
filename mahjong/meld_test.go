package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_hkmj/mahjong"
)

func Test_NewMeld(t *testing.T) {
	type Case struct {
		make  func(...mahjong.Tile) (*mahjong.Meld, error)
		tiles string
		ok    bool
	}
	testCases := []Case{
		{mahjong.NewPong, "wan/1|wan/1|wan/1", true},
		{mahjong.NewPong, "feng/1|feng/1|feng/1", true},
		{mahjong.NewPong, "wan/1|wan/1|wan/2", false},
		{mahjong.NewPong, "wan/1|wan/1", false},
		{mahjong.NewKong, "long/1|long/1|long/1|long/1", true},
		{mahjong.NewKong, "long/1|long/1|long/1", false},
		{mahjong.NewKong, "long/1|long/1|long/1|long/2", false},
		{mahjong.NewEyes, "tong/9|tong/9", true},
		{mahjong.NewEyes, "tong/9|tong/8", false},
		{mahjong.NewChow, "zhu/1|zhu/2|zhu/3", true},
		{mahjong.NewChow, "zhu/3|zhu/1|zhu/2", true}, // 乱序输入也认
		{mahjong.NewChow, "zhu/1|zhu/2|zhu/4", false},
		{mahjong.NewChow, "zhu/8|zhu/9|tong/1", false},
		{mahjong.NewChow, "feng/1|feng/2|feng/3", false}, // 字牌不能吃
		{mahjong.NewPong, "hua/1|hua/1|hua/1", false},    // 花牌不进面子
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			meld, err := tc.make(mahjong.ParseTiles(tc.tiles)...)
			if tc.ok && err != nil {
				t.Errorf("meld(%s) unexpected error: %v", tc.tiles, err)
			}
			if !tc.ok && err == nil {
				t.Errorf("meld(%s) = %v, want error", tc.tiles, meld)
			}
		})
	}
}

func Test_MeldSorted(t *testing.T) {
	meld, err := mahjong.NewChow(mahjong.ParseTiles("wan/3|wan/1|wan/2")...)
	if err != nil {
		t.Fatal(err)
	}
	want := mahjong.ParseTiles("wan/1|wan/2|wan/3")
	for i, tile := range meld.Tiles {
		if tile != want[i] {
			t.Errorf("tiles not sorted: %s", mahjong.TilesName(meld.Tiles))
			break
		}
	}
}

func Test_SortMelds(t *testing.T) {
	chow, _ := mahjong.NewChow(mahjong.ParseTiles("wan/1|wan/2|wan/3")...)
	pong, _ := mahjong.NewPong(mahjong.ParseTiles("tong/5|tong/5|tong/5")...)
	kong, _ := mahjong.NewKong(mahjong.ParseTiles("feng/1|feng/1|feng/1|feng/1")...)
	eyes, _ := mahjong.NewEyes(mahjong.ParseTiles("long/2|long/2")...)

	melds := []*mahjong.Meld{eyes, chow, pong, kong}
	mahjong.SortMelds(melds)

	wantOrder := []mahjong.EMeldType{mahjong.MeldKong, mahjong.MeldPong, mahjong.MeldChow, mahjong.MeldEyes}
	for i, m := range melds {
		if m.Type != wantOrder[i] {
			t.Fatalf("melds[%d].Type = %v, want %v", i, m.Type, wantOrder[i])
		}
	}
}

func Test_MeldKey(t *testing.T) {
	a, _ := mahjong.NewPong(mahjong.ParseTiles("wan/1|wan/1|wan/1")...)
	b, _ := mahjong.NewPong(mahjong.ParseTiles("wan/1|wan/1|wan/1")...)
	c, _ := mahjong.NewPong(mahjong.ParseTiles("wan/2|wan/2|wan/2")...)
	if a.Key() != b.Key() {
		t.Errorf("same pong keys differ: %s != %s", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("different pongs share key: %s", a.Key())
	}
}
