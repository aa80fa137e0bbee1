package theme

import (
	"image/color"

	"git.lost.host/meutraa/handbeat/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Ring(ring game.Ring) color.RGBA {
	return getRingColor(ring)
}

func (t *DefaultTheme) Inner() color.RGBA {
	return white
}

func (t *DefaultTheme) Joint() color.RGBA {
	return green
}

func (t *DefaultTheme) Judgement(j game.Judgement) color.RGBA {
	col, ok := judgementColors[j]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) Text() color.RGBA {
	return white
}

func (t *DefaultTheme) RingSym() rune {
	return ringSym
}

func (t *DefaultTheme) InnerSym() rune {
	return innerSym
}

func (t *DefaultTheme) JointSym() rune {
	return jointSym
}

const (
	ringSym  = '•'
	innerSym = '█'
	jointSym = '⬤'
)

var (
	white = color.RGBA{255, 255, 255, 255}
	green = color.RGBA{0, 236, 128, 255}

	ringColors = map[game.Ring]color.RGBA{
		game.Early:    {0, 118, 236, 255}, // blue
		game.OnTarget: green,
		game.Late:     {236, 30, 0, 255}, // red
	}
	judgementColors = map[game.Judgement]color.RGBA{
		game.Great: {236, 195, 0, 255}, // yellow
		game.Good:  {173, 236, 236, 255},
		game.Miss:  {106, 106, 106, 255},
	}
)

func getRingColor(r game.Ring) color.RGBA {
	col, ok := ringColors[r]
	if !ok {
		return white
	}
	return col
}
