package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

type Keyboard struct {
	keys  <-chan keyboard.KeyEvent
	close func() error
}

func OpenKeyboard() (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return NewKeyboard(keys, keyboard.Close), nil
}

func NewKeyboard(keys <-chan keyboard.KeyEvent, close func() error) *Keyboard {
	return &Keyboard{keys: keys, close: close}
}

func (k *Keyboard) Poll() []Action {
	var actions []Action
	for i := len(k.keys); i > 0; i-- {
		if a := TranslateKey(<-k.keys); a != None {
			actions = append(actions, a)
		}
	}
	return actions
}

func (k *Keyboard) Close() error {
	if nil == k.close {
		return nil
	}
	return k.close()
}

func TranslateKey(ev keyboard.KeyEvent) Action {
	if nil != ev.Err {
		return None
	}
	switch ev.Key {
	case keyboard.KeyEnter, keyboard.KeySpace:
		return Start
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Quit
	}
	switch ev.Rune {
	case 's', 'S':
		return Start
	case 'q', 'Q':
		return Quit
	}
	return None
}
