package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal reads actions from a tcell screen, which owns the terminal input
// when the tcell display is used.
type Terminal struct {
	events  chan tcell.Event
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return newTerminal(screen, 128)
}

func newTerminal(screen tcell.Screen, buffer int) *Terminal {
	t := &Terminal{
		events:  make(chan tcell.Event, buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(t.stopped)
		defer close(t.events)
		for {
			// nil once the screen is finalized
			ev := screen.PollEvent()
			if nil == ev {
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()
	return t
}

func (t *Terminal) Poll() []Action {
	var actions []Action
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return actions
			}
			if a := TranslateEvent(ev); a != None {
				actions = append(actions, a)
			}
		default:
			return actions
		}
	}
}

// Close stops delivering events. The reader exits on its next event or once
// the screen is finalized.
func (t *Terminal) Close() error {
	t.once.Do(func() { close(t.done) })
	return nil
}

func TranslateEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return None
	}
	switch key.Key() {
	case tcell.KeyEnter:
		return Start
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ', 's', 'S':
			return Start
		case 'q', 'Q':
			return Quit
		}
	}
	return None
}
