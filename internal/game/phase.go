package game

type Phase uint8

const (
	Idle Phase = iota
	Countdown
	Playing
	Ended
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Countdown:
		return "countdown"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	}
	return "unknown"
}
