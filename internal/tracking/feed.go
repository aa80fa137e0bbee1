package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// Frames with an image can be large
const readLimit = 8 << 20

// Feed receives landmark messages from a pose sidecar over a websocket and
// keeps the latest one. It reconnects until closed.
type Feed struct {
	url    string
	log    *zap.Logger
	maxAge time.Duration
	retry  time.Duration
	now    func() time.Time

	mu     sync.Mutex
	latest Frame
	has    bool

	cancel context.CancelFunc
	done   chan struct{}
}

func Dial(ctx context.Context, url string, maxAge time.Duration, log *zap.Logger) (*Feed, error) {
	conn, err := dial(ctx, url)
	if nil != err {
		return nil, fmt.Errorf("unable to connect to %v: %w", url, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		url:    url,
		log:    log,
		maxAge: maxAge,
		retry:  time.Second,
		now:    time.Now,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go f.run(ctx, conn)
	return f, nil
}

func dial(ctx context.Context, url string) (*websocket.Conn, error) {
	if url == "" {
		return nil, errors.New("url not configured")
	}
	conn, resp, err := websocket.Dial(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if nil != err {
		return nil, err
	}
	conn.SetReadLimit(readLimit)
	return conn, nil
}

func (f *Feed) run(ctx context.Context, conn *websocket.Conn) {
	defer close(f.done)

	for {
		err := f.read(ctx, conn)
		conn.Close(websocket.StatusNormalClosure, "")
		if nil != ctx.Err() {
			return
		}
		f.log.Warn("landmark feed lost", zap.String("url", f.url), zap.Error(err))

		conn = f.redial(ctx)
		if nil == conn {
			return
		}
		f.log.Info("landmark feed reconnected", zap.String("url", f.url))
	}
}

func (f *Feed) redial(ctx context.Context) *websocket.Conn {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.retry):
		}
		conn, err := dial(ctx, f.url)
		if nil == err {
			return conn
		}
		f.log.Debug("unable to reconnect", zap.Error(err))
	}
}

func (f *Feed) read(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if nil != err {
			return err
		}
		m, err := Parse(data)
		if nil != err {
			f.log.Debug("dropping landmark message", zap.Error(err))
			continue
		}

		f.mu.Lock()
		f.latest = Frame{Time: f.now(), Hands: m.Hands, Image: m.Image}
		f.has = true
		f.mu.Unlock()
	}
}

// NextFrame returns the latest frame unless it is older than maxAge.
func (f *Feed) NextFrame() (Frame, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.has || f.now().Sub(f.latest.Time) > f.maxAge {
		return Frame{}, false
	}
	return f.latest, true
}

func (f *Feed) Close() error {
	f.cancel()
	<-f.done
	return nil
}
