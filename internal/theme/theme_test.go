package theme

import (
	"image/color"
	"testing"

	"git.lost.host/meutraa/handbeat/internal/game"
)

func TestRingColors(t *testing.T) {
	var th Theme = &DefaultTheme{}
	early, on, late := th.Ring(game.Early), th.Ring(game.OnTarget), th.Ring(game.Late)
	if early == on || on == late || early == late {
		t.Fatal("each ring needs its own color")
	}
	if early.B <= early.R || late.R <= late.B || on.G <= on.R {
		t.Fatalf("expected blue, green, red; got %v %v %v", early, on, late)
	}
	if th.Ring(game.Ring(42)) != (color.RGBA{255, 255, 255, 255}) {
		t.Fatal("unknown rings should be white")
	}
}

func TestJudgementColors(t *testing.T) {
	th := &DefaultTheme{}
	for _, j := range game.Judgements {
		if th.Judgement(j).A != 255 {
			t.Errorf("%v has no color", j)
		}
	}
	if th.Judgement(game.Great) == th.Judgement(game.Good) {
		t.Fatal("great and good should differ")
	}
}
