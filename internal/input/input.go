package input

type Action int

const (
	None Action = iota
	Start
	Quit
)

func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Quit:
		return "quit"
	}
	return "none"
}

// Source reports the actions pressed since the last poll without blocking.
type Source interface {
	Poll() []Action
	Close() error
}
