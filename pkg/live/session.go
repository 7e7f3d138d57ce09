package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// conn is the subset of *websocket.Conn the session uses. Tests swap in
// an in-memory implementation.
type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetReadLimit(limit int64)
	Close() error
}

var sessionIDs atomic.Uint64

// Session owns one connected client. All component work (rendering,
// signal updates, event handlers) happens on the session's single event
// loop goroutine; the read loop only decodes frames and queues them.
type Session struct {
	id     uint64
	conn   conn
	cfg    *Config
	logger *slog.Logger

	root  vdom.Component
	owner *lumen.Owner

	// Event-loop state, touched only by that goroutine.
	tree     *vdom.VNode
	handlers map[string]any
	seq      uint64
	dirty    bool
	focus    string

	events chan *EventFrame

	writeMu   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(c conn, root vdom.Component, cfg *Config) *Session {
	id := sessionIDs.Add(1)
	return &Session{
		id:     id,
		conn:   c,
		cfg:    cfg,
		logger: cfg.Logger.With("component", "session", "session_id", id),
		root:   root,
		owner:  lumen.NewOwner(nil),
		events: make(chan *EventFrame, cfg.MaxEventQueue),
		done:   make(chan struct{}),
	}
}

// MarkDirty implements lumen.Listener. Signal writes during a dispatch
// coalesce into the re-render that follows it.
func (s *Session) MarkDirty() {
	s.dirty = true
}

// ID implements lumen.Listener.
func (s *Session) ID() uint64 { return s.id }

// RequestFocus implements lumen.Focuser. The focus frame is sent after
// the swap so the client focuses an element that exists.
func (s *Session) RequestFocus(id string) {
	s.focus = id
}

// Run renders the initial tree, sends it, and serves the connection. It
// blocks until the connection closes.
func (s *Session) Run() {
	s.cfg.Metrics.sessionStarted()
	defer s.cfg.Metrics.sessionEnded()
	defer s.Close()

	s.conn.SetReadLimit(s.cfg.MaxMessageSize)

	s.renderTree()
	s.sendSwap()
	s.flushFocus()

	go s.eventLoop()
	s.readLoop()
}

// Close tears down the connection and disposes the component scope.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		s.owner.Dispose()
	})
}

// readLoop decodes incoming frames and queues events for the event loop.
func (s *Session) readLoop() {
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		kind, err := frameType(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			s.cfg.Metrics.observeError(ErrBadFrame)
			s.send(ErrorFrame{Type: FrameError, Code: ErrBadFrame, Detail: err.Error()})
			continue
		}

		switch kind {
		case FrameEvent:
			frame, err := decodeEventFrame(msg)
			if err != nil {
				s.cfg.Metrics.observeError(ErrBadFrame)
				s.send(ErrorFrame{Type: FrameError, Code: ErrBadFrame, Detail: err.Error()})
				continue
			}
			select {
			case s.events <- frame:
			case <-s.done:
				return
			}

		case FramePing:
			var ping struct {
				TS int64 `json:"ts"`
			}
			json.Unmarshal(msg, &ping)
			s.send(PongFrame{Type: FramePong, TS: ping.TS})

		default:
			s.logger.Warn("unknown frame type", "type", kind)
		}
	}
}

// eventLoop is the session's single component goroutine.
func (s *Session) eventLoop() {
	for {
		select {
		case frame := <-s.events:
			s.dispatch(frame)
		case <-s.done:
			return
		}
	}
}

func (s *Session) dispatch(frame *EventFrame) {
	started := time.Now()

	span := s.startSpan(frame)
	defer span.End()

	handler, ok := s.handlers[frame.NID+":"+frame.Event]
	if !ok {
		span.SetStatus(codes.Error, "no handler")
		s.cfg.Metrics.observeError(ErrNoHandler)
		s.send(ErrorFrame{Type: FrameError, Code: ErrNoHandler,
			Detail: frame.Event + " on " + frame.NID})
		return
	}

	lumen.WithOwner(s.owner, func() {
		lumen.CallHandler(handler, payloadFor(frame))
	})

	if s.dirty {
		s.renderTree()
		s.sendSwap()
	}
	s.flushFocus()

	s.cfg.Metrics.observeEvent(frame.Event, time.Since(started))
}

// payloadFor maps a wire event to its handler argument type.
func payloadFor(frame *EventFrame) any {
	switch frame.Event {
	case "onkeydown", "onkeyup":
		return lumen.KeyboardEvent{Key: frame.Key}
	case "onfocus", "onblur":
		return lumen.FocusEvent{}
	default:
		return lumen.MouseEvent{}
	}
}

// renderTree expands the component under the session scope and refreshes
// the handler table.
func (s *Session) renderTree() {
	s.dirty = false
	lumen.WithOwner(s.owner, func() {
		lumen.WithListener(s, func() {
			wrapped := lumen.FocusContext.Provider(lumen.Focuser(s),
				&vdom.VNode{Kind: vdom.KindComponent, Comp: s.root},
			)
			s.tree = vdom.Expand(wrapped)
		})
	})
	s.handlers = vdom.Handlers(s.tree)
}

func (s *Session) sendSwap() {
	html, err := render.ToString(s.tree)
	if err != nil {
		s.logger.Error("render error", "error", err)
		return
	}
	s.seq++
	s.send(SwapFrame{Type: FrameSwap, Seq: s.seq, HTML: html})
	s.cfg.Metrics.observeSwap()
}

func (s *Session) flushFocus() {
	if s.focus == "" {
		return
	}
	s.send(FocusFrame{Type: FrameFocus, ID: s.focus})
	s.cfg.Metrics.observeFocus()
	s.focus = ""
}

func (s *Session) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode frame", "error", err)
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write error", "error", err)
	}
}

// startSpan opens an OpenTelemetry span for one event dispatch. Without
// a configured tracer it returns a no-op span.
func (s *Session) startSpan(frame *EventFrame) trace.Span {
	if s.cfg.Tracer == nil {
		return trace.SpanFromContext(context.Background())
	}
	_, span := s.cfg.Tracer.Start(context.Background(), "live.event")
	span.SetAttributes(
		attribute.String("lumen.event", frame.Event),
		attribute.String("lumen.nid", frame.NID),
		attribute.Int64("lumen.session_id", int64(s.id)),
	)
	return span
}
