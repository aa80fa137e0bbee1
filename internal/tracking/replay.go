package tracking

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// Replay plays back recorded landmark messages, one JSON message per line,
// timed from the first call to NextFrame.
type Replay struct {
	messages []Message
	maxAge   time.Duration
	start    time.Time
	now      func() time.Time
}

func LoadReplay(file string, maxAge time.Duration) (*Replay, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	r, err := NewReplay(f, maxAge)
	if nil != err {
		return nil, fmt.Errorf("unable to read %v: %w", file, err)
	}
	return r, nil
}

func NewReplay(r io.Reader, maxAge time.Duration) (*Replay, error) {
	replay := &Replay{maxAge: maxAge, now: time.Now}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), readLimit)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		m, err := Parse(scanner.Bytes())
		if nil != err {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		replay.messages = append(replay.messages, m)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	sort.SliceStable(replay.messages, func(i, j int) bool {
		return replay.messages[i].Offset < replay.messages[j].Offset
	})
	return replay, nil
}

func (r *Replay) Len() int {
	return len(r.messages)
}

func (r *Replay) NextFrame() (Frame, bool) {
	now := r.now()
	if r.start.IsZero() {
		r.start = now
	}
	elapsed := now.Sub(r.start)

	i := sort.Search(len(r.messages), func(i int) bool {
		return r.messages[i].Offset > elapsed
	}) - 1
	if i < 0 {
		return Frame{}, false
	}
	m := r.messages[i]
	if elapsed-m.Offset > r.maxAge {
		return Frame{}, false
	}
	return Frame{Time: r.start.Add(m.Offset), Hands: m.Hands, Image: m.Image}, true
}
