package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_hkmj/mahjong"
)

func Test_ParseTile(t *testing.T) {
	for _, name := range []string{"wan/1", "zhu/9", "tong/5", "feng/4", "long/3", "hua/2", "gui/4"} {
		tile := mahjong.ParseTile(name)
		if !tile.IsValid() {
			t.Errorf("ParseTile(%s) invalid", name)
		}
		if tile.String() != name {
			t.Errorf("roundtrip %s -> %s", name, tile.String())
		}
	}
	for _, name := range []string{"wan/0", "wan/10", "feng/5", "long/4", "what/1", "wan"} {
		if tile := mahjong.ParseTile(name); tile != mahjong.TileNull {
			t.Errorf("ParseTile(%s) = %v, want TileNull", name, tile)
		}
	}
}

func Test_TileKinds(t *testing.T) {
	if !mahjong.ParseTile("wan/1").IsTerminal() || mahjong.ParseTile("wan/2").IsTerminal() {
		t.Error("terminal check broken for character suit")
	}
	if mahjong.TileDong.IsSuit() || !mahjong.TileDong.IsWind() {
		t.Error("east wind misclassified")
	}
	if !mahjong.TileZhong.IsDragon() || !mahjong.TileZhong.IsHonor() {
		t.Error("red dragon misclassified")
	}
	if !mahjong.ParseTile("hua/1").IsExtra() || mahjong.ParseTile("tong/1").IsExtra() {
		t.Error("bonus check broken")
	}
}

func Test_AllTiles(t *testing.T) {
	total := 0
	for tile, count := range mahjong.AllTiles() {
		if !tile.IsValid() {
			t.Errorf("invalid tile %v in the full set", tile)
		}
		total += count
	}
	if total != 144 {
		t.Errorf("full set has %d tiles, want 144", total)
	}
}
