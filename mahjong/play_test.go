package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_hkmj/mahjong"
)

// 无第四张时补杠遭拒，已碰的副露必须原样保留
func Test_DeclareKongRejected(t *testing.T) {
	play := mahjong.NewPlay(mahjong.NewRule(), 0, 0)
	data := play.GetPlayData(1)
	for _, tile := range mahjong.ParseTiles("wan/5|wan/9") {
		data.PutHandTile(tile)
	}
	pong, err := mahjong.NewPong(mahjong.ParseTiles("wan/1|wan/1|wan/1")...)
	if err != nil {
		t.Fatal(err)
	}
	pong.From = 3
	data.AddMeld(pong)

	kong, err := mahjong.NewKong(mahjong.ParseTiles("wan/1|wan/1|wan/1|wan/1")...)
	if err != nil {
		t.Fatal(err)
	}
	if play.DeclareKong(1, kong) {
		t.Fatal("promotion without the fourth tile must be rejected")
	}
	melds := data.GetMelds()
	if len(melds) != 1 || melds[0].Type != mahjong.MeldPong {
		t.Fatalf("melds = %v, want the pong kept intact", melds)
	}

	// 手里不足四张，暗杠同样遭拒且手牌不动
	concealed, err := mahjong.NewKong(mahjong.ParseTiles("wan/9|wan/9|wan/9|wan/9")...)
	if err != nil {
		t.Fatal(err)
	}
	concealed.Concealed = true
	if play.DeclareKong(1, concealed) {
		t.Fatal("concealed kong without four copies must be rejected")
	}
	if got := len(data.GetHandTiles()); got != 2 {
		t.Fatalf("hand size = %d, want untouched 2", got)
	}
}
