package live

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lumen-ui/lumen/pkg/vdom"
	"github.com/lumen-ui/lumen/pkg/widgets/radiogroup"
)

// fakeConn feeds the session from a channel and records what it writes.
type fakeConn struct {
	in chan []byte

	mu      sync.Mutex
	written [][]byte

	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16)}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	msg, ok := <-c.in
	if !ok {
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
	return websocket.TextMessage, msg, nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	c.written = append(c.written, cp)
	return nil
}

func (c *fakeConn) SetReadDeadline(time.Time) error  { return nil }
func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }
func (c *fakeConn) SetReadLimit(int64)               {}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.in) })
	return nil
}

func (c *fakeConn) frames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.written))
	copy(out, c.written)
	return out
}

// waitFrames polls until the connection has seen at least n frames.
func waitFrames(t *testing.T, c *fakeConn, n int) [][]byte {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if frames := c.frames(); len(frames) >= n {
			return frames
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d frames, have %d", n, len(c.frames()))
	return nil
}

func crustRoot() vdom.Component {
	return radiogroup.New(
		radiogroup.GroupProps{ID: "crust", Label: "Pizza crust"},
		radiogroup.NewItem(radiogroup.ItemProps{}, "Regular crust"),
		radiogroup.NewItem(radiogroup.ItemProps{}, "Deep dish"),
		radiogroup.NewItem(radiogroup.ItemProps{}, "Thin crust"),
	)
}

func startSession(t *testing.T) (*Session, *fakeConn) {
	t.Helper()
	cfg := Config{}
	cfg.applyDefaults()
	fc := newFakeConn()
	sess := newSession(fc, crustRoot(), &cfg)
	go sess.Run()
	t.Cleanup(sess.Close)
	waitFrames(t, fc, 1)
	return sess, fc
}

func decodeFrame[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var f T
	if err := json.Unmarshal(raw, &f); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return f
}

// nidFor extracts the data-nid of the element with the given id from
// rendered HTML.
func nidFor(t *testing.T, html, id string) string {
	t.Helper()
	re := regexp.MustCompile(`<[a-z]+ ([^>]*id="` + regexp.QuoteMeta(id) + `"[^>]*)>`)
	m := re.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no element with id %q in:\n%s", id, html)
	}
	nidRe := regexp.MustCompile(`data-nid="([^"]+)"`)
	nm := nidRe.FindStringSubmatch(m[1])
	if nm == nil {
		t.Fatalf("element %q has no data-nid in:\n%s", id, m[1])
	}
	return nm[1]
}

func sendEvent(fc *fakeConn, frame EventFrame) {
	frame.Type = FrameEvent
	data, _ := json.Marshal(frame)
	fc.in <- data
}

func TestSessionInitialSwap(t *testing.T) {
	_, fc := startSession(t)

	swap := decodeFrame[SwapFrame](t, fc.frames()[0])
	if swap.Type != FrameSwap {
		t.Fatalf("first frame type = %q, want swap", swap.Type)
	}
	if swap.Seq != 1 {
		t.Errorf("seq = %d, want 1", swap.Seq)
	}
	if !strings.Contains(swap.HTML, `role="radiogroup"`) {
		t.Errorf("initial swap missing radiogroup markup:\n%s", swap.HTML)
	}
	if !strings.Contains(swap.HTML, "data-nid=") {
		t.Errorf("initial swap has no addressable nodes:\n%s", swap.HTML)
	}
}

func TestSessionClickReRendersAndFocuses(t *testing.T) {
	_, fc := startSession(t)
	initial := decodeFrame[SwapFrame](t, fc.frames()[0])
	nid := nidFor(t, initial.HTML, "crust-item-1")

	sendEvent(fc, EventFrame{NID: nid, Event: "onclick"})

	frames := waitFrames(t, fc, 3)
	swap := decodeFrame[SwapFrame](t, frames[1])
	if swap.Seq != 2 {
		t.Errorf("seq = %d, want 2", swap.Seq)
	}
	if !strings.Contains(swap.HTML, `aria-checked="true"`) {
		t.Errorf("no item checked after click:\n%s", swap.HTML)
	}

	focus := decodeFrame[FocusFrame](t, frames[2])
	if focus.Type != FrameFocus || focus.ID != "crust-item-1" {
		t.Errorf("focus frame = %+v, want focus crust-item-1", focus)
	}
}

func TestSessionKeyDownNavigates(t *testing.T) {
	_, fc := startSession(t)
	initial := decodeFrame[SwapFrame](t, fc.frames()[0])
	nid := nidFor(t, initial.HTML, "crust-item-0")

	sendEvent(fc, EventFrame{NID: nid, Event: "onkeydown", Key: "ArrowDown"})

	frames := waitFrames(t, fc, 3)
	focus := decodeFrame[FocusFrame](t, frames[2])
	if focus.ID != "crust-item-1" {
		t.Errorf("focus = %q, want crust-item-1", focus.ID)
	}
}

func TestSessionUnknownHandlerIsReported(t *testing.T) {
	_, fc := startSession(t)

	sendEvent(fc, EventFrame{NID: "n999", Event: "onclick"})

	frames := waitFrames(t, fc, 2)
	errFrame := decodeFrame[ErrorFrame](t, frames[1])
	if errFrame.Type != FrameError || errFrame.Code != ErrNoHandler {
		t.Errorf("frame = %+v, want %s error", errFrame, ErrNoHandler)
	}
}

func TestSessionRejectsMalformedFrames(t *testing.T) {
	_, fc := startSession(t)

	fc.in <- []byte(`{not json`)

	frames := waitFrames(t, fc, 2)
	errFrame := decodeFrame[ErrorFrame](t, frames[1])
	if errFrame.Code != ErrBadFrame {
		t.Errorf("code = %q, want %s", errFrame.Code, ErrBadFrame)
	}
}

func TestSessionAnswersPing(t *testing.T) {
	_, fc := startSession(t)

	fc.in <- []byte(`{"type":"ping","ts":42}`)

	frames := waitFrames(t, fc, 2)
	pong := decodeFrame[PongFrame](t, frames[1])
	if pong.Type != FramePong || pong.TS != 42 {
		t.Errorf("pong = %+v, want ts 42", pong)
	}
}
