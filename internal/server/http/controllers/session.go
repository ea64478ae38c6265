package controllers

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	livesvc "github.com/alutan/trade-history/internal/services/live"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

const closeWriteWait = 2 * time.Second

// session owns one live websocket connection. The read loop handles client
// commands; the dispatcher goroutine inside the controller pushes record
// frames. Both write through writeFrame, which serializes on writeMu.
type session struct {
	id     string
	conn   *websocket.Conn
	svc    *livesvc.Service
	logger logpkg.Logger

	writeMu sync.Mutex

	ctx    context.Context
	ctrlMu sync.Mutex
	ctrl   *livesvc.Controller
}

func newSession(id string, conn *websocket.Conn, svc *livesvc.Service, logger logpkg.Logger) *session {
	return &session{id: id, conn: conn, svc: svc, logger: logger}
}

// run reads client commands until the connection closes, then tears the
// pipeline down. It blocks for the lifetime of the connection.
func (s *session) run(ctx context.Context) {
	s.ctx = ctx
	s.logger.Info("stream session opened")
	defer func() {
		s.ctrlMu.Lock()
		ctrl := s.ctrl
		s.ctrlMu.Unlock()
		if ctrl != nil {
			ctrl.Stop()
		}
		_ = s.conn.Close()
		s.logger.Info("stream session closed")
	}()

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", logpkg.Err(err))
			}
			return
		}
		var cmd commandFrame
		if err := json.Unmarshal(payload, &cmd); err != nil {
			s.logger.Warn("malformed command frame", logpkg.Err(err))
			s.writeFrame(errorFrame{Type: "error", Error: "malformed command frame"})
			continue
		}
		switch strings.ToLower(strings.TrimSpace(cmd.Action)) {
		case "start":
			s.handleStart(cmd.Filter)
		case "stop":
			s.handleStop()
		default:
			s.logger.Warn("unknown action", logpkg.Str("action", cmd.Action))
			s.writeFrame(errorFrame{Type: "error", Error: "unknown action " + cmd.Action})
		}
	}
}

// handleStart builds the pipeline on first start and resumes it afterwards.
// Repeating start on a running pipeline is a no-op; there is never a second
// pipeline per connection.
func (s *session) handleStart(filter string) {
	s.ctrlMu.Lock()
	defer s.ctrlMu.Unlock()
	if s.ctrl == nil {
		ctrl, err := s.svc.OpenController(s.ctx, s, filter, s.onPipelineError)
		if err != nil {
			s.logger.Error("pipeline start refused", logpkg.Err(err))
			s.writeFrame(errorFrame{Type: "error", Error: err.Error()})
			return
		}
		s.ctrl = ctrl
	}
	if err := s.ctrl.Start(); err != nil {
		s.writeFrame(errorFrame{Type: "error", Error: err.Error()})
		return
	}
	s.writeFrame(statusFrame{Type: "status", State: s.ctrl.State().String()})
}

// handleStop pauses delivery; stop before any start is a no-op.
func (s *session) handleStop() {
	s.ctrlMu.Lock()
	defer s.ctrlMu.Unlock()
	if s.ctrl == nil {
		s.writeFrame(statusFrame{Type: "status", State: livesvc.StateNotStarted.String()})
		return
	}
	if err := s.ctrl.Pause(); err != nil {
		s.writeFrame(errorFrame{Type: "error", Error: err.Error()})
		return
	}
	s.writeFrame(statusFrame{Type: "status", State: s.ctrl.State().String()})
}

// Send implements livesvc.StreamSink for the dispatcher goroutine.
func (s *session) Send(rec livesvc.Record) error {
	return s.writeFrame(recordFrame{Type: "record", Record: rec})
}

// Context implements livesvc.StreamSink.
func (s *session) Context() context.Context { return s.ctx }

// onPipelineError runs when the relay dies mid-stream. The controller is
// already stopping; close the socket with an unexpected-condition code so
// the client sees why. A failed close is logged and swallowed.
func (s *session) onPipelineError(err error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	reason := truncateCloseReason(err.Error())
	msg := websocket.FormatCloseMessage(websocket.CloseInternalServerErr, reason)
	if werr := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait)); werr != nil {
		s.logger.Warn("close after pipeline failure", logpkg.Err(werr))
	}
	_ = s.conn.Close()
}

func (s *session) writeFrame(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// truncateCloseReason caps the reason so the close payload stays under the
// 125-byte control-frame limit, cutting on a rune boundary so the payload
// remains valid UTF-8.
func truncateCloseReason(reason string) string {
	const max = 120
	if len(reason) <= max {
		return reason
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}
