package theme

import (
	"image/color"

	"git.lost.host/meutraa/handbeat/internal/game"
)

type Theme interface {
	Ring(ring game.Ring) color.RGBA
	Inner() color.RGBA
	Joint() color.RGBA
	Judgement(j game.Judgement) color.RGBA
	Text() color.RGBA
	RingSym() rune
	InnerSym() rune
	JointSym() rune
}
