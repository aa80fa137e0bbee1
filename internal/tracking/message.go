package tracking

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
	"github.com/tidwall/gjson"
)

var ErrInvalidMessage = errors.New("invalid landmark message")

// Message is what the pose sidecar sends per camera frame:
//
//	{"t": 1234.5, "hands": [[[x, y], ...], ...], "image": "<base64 jpeg>"}
//
// A hand may also be {"landmarks": [{"x": x, "y": y}, ...]}.
type Message struct {
	Offset time.Duration // "t", milliseconds since the sidecar started
	Hands  []game.Hand
	Image  image.Image
}

func Parse(data []byte) (Message, error) {
	var m Message
	if !gjson.ValidBytes(data) {
		return m, ErrInvalidMessage
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return m, ErrInvalidMessage
	}

	m.Offset = time.Duration(root.Get("t").Float() * float64(time.Millisecond))
	root.Get("hands").ForEach(func(_, hand gjson.Result) bool {
		if hand.IsObject() {
			hand = hand.Get("landmarks")
		}
		var h game.Hand
		hand.ForEach(func(_, p gjson.Result) bool {
			// Malformed points still take their slot so joint indices hold
			if p.IsArray() {
				h = append(h, game.Point{X: p.Get("0").Float(), Y: p.Get("1").Float()})
			} else {
				h = append(h, game.Point{X: p.Get("x").Float(), Y: p.Get("y").Float()})
			}
			return true
		})
		if len(h) > 0 {
			m.Hands = append(m.Hands, h)
		}
		return true
	})

	if img := root.Get("image").String(); img != "" {
		raw, err := base64.StdEncoding.DecodeString(img)
		if nil != err {
			return m, fmt.Errorf("unable to decode image: %w", err)
		}
		m.Image, _, err = image.Decode(bytes.NewReader(raw))
		if nil != err {
			return m, fmt.Errorf("unable to decode image: %w", err)
		}
	}
	return m, nil
}
