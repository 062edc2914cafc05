// Package engine provides a headless in-process audio engine. It keeps the
// mixer state the editor views display and applies editor commands to it;
// no audio is produced.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/logging"
)

var _ port.AudioEngine = (*Engine)(nil)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrTrackNotFound    = errors.New("track not found")
	ErrRegionNotFound   = errors.New("region not found")
	ErrNodeNotFound     = errors.New("node not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrNotConnected     = errors.New("connection not found")
	ErrAlreadyConnected = errors.New("already connected")
)

const (
	defaultBPM            = 120.0
	defaultSampleRate     = 48000
	defaultDuration       = 32.0
	defaultCommandLogSize = 256
)

// CommandRecord is one entry of the engine's command log.
type CommandRecord struct {
	Command string
	At      time.Time
	Err     error
}

// Option configures an Engine.
type Option func(*Engine)

// WithBPM sets the session tempo.
func WithBPM(bpm float64) Option {
	return func(e *Engine) {
		if bpm > 0 {
			e.mixer.BPM = bpm
		}
	}
}

// WithCommandLogSize bounds the number of retained command records.
func WithCommandLogSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.logSize = n
		}
	}
}

// WithClock overrides the time source of the command log.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine implements port.AudioEngine over an in-memory mixer.
type Engine struct {
	mu sync.Mutex

	mixer    entity.MixerState
	playing  bool
	position float64

	nextTrack  entity.TrackID
	nextRegion entity.RegionID
	nextNote   int
	nextNode   int

	log     []CommandRecord
	logSize int
	now     func() time.Time

	listeners []func()
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		mixer: entity.MixerState{
			BPM:      defaultBPM,
			Duration: defaultDuration,
		},
		logSize: defaultCommandLogSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.mixer.SamplesPerBeat = int(float64(defaultSampleRate) * 60 / e.mixer.BPM)
	return e
}

// OnChange registers fn to be called after every command that changed the mixer.
// fn runs on the caller's goroutine with no engine lock held.
func (e *Engine) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners = append(e.listeners, fn)
}

// Invoke applies command and returns its JSON response.
func (e *Engine) Invoke(ctx context.Context, command string, payload map[string]any) (json.RawMessage, error) {
	log := logging.FromContext(ctx)

	var req request
	if err := decode(payload, &req); err != nil {
		return nil, fmt.Errorf("%s: %w", command, err)
	}

	e.mu.Lock()
	resp, changed, err := e.apply(command, &req)
	e.record(command, err)
	listeners := e.listeners
	e.mu.Unlock()

	if err != nil {
		log.Debug().Err(err).Str("command", command).Msg("engine command rejected")
		return nil, err
	}
	log.Trace().Str("command", command).Msg("engine command applied")

	if changed {
		for _, fn := range listeners {
			fn()
		}
	}
	return json.Marshal(resp)
}

// Send applies command without returning its outcome. Failures are logged.
func (e *Engine) Send(ctx context.Context, command string, payload map[string]any) {
	if _, err := e.Invoke(ctx, command, payload); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("command", command).Msg("engine send failed")
	}
}

// MixerState returns a deep copy of the current mixer.
func (e *Engine) MixerState(_ context.Context) (*entity.MixerState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := cloneMixer(e.mixer)
	return &m, nil
}

// Transport returns whether playback is running and where it was started.
func (e *Engine) Transport() (playing bool, position float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.playing, e.position
}

// Commands returns the retained command log, oldest first.
func (e *Engine) Commands() []CommandRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]CommandRecord, len(e.log))
	copy(out, e.log)
	return out
}

// record appends to the bounded command log. Must be called with lock held.
func (e *Engine) record(command string, err error) {
	if len(e.log) >= e.logSize {
		n := copy(e.log, e.log[len(e.log)-e.logSize+1:])
		e.log = e.log[:n]
	}
	e.log = append(e.log, CommandRecord{Command: command, At: e.now(), Err: err})
}

// apply dispatches one command. Must be called with lock held.
func (e *Engine) apply(command string, req *request) (resp any, changed bool, err error) {
	switch command {
	case usecase.CmdAddTrack:
		return e.addTrack(req)
	case usecase.CmdRemoveTrack:
		return e.removeTrack(req)
	case usecase.CmdAddRegion:
		return e.addRegion(req)
	case usecase.CmdMoveRegion:
		return e.moveRegion(req)
	case usecase.CmdAddNode:
		return e.addNode(req)
	case usecase.CmdRemoveNode:
		return e.removeNode(req)
	case usecase.CmdMoveNode:
		return e.moveNode(req)
	case usecase.CmdConnectGraph:
		return e.connect(req)
	case usecase.CmdDisconnectGraph:
		return e.disconnect(req)
	case usecase.CmdSetShaderCode:
		return e.setShaderCode(req)
	case usecase.CmdAddNote:
		return e.addNote(req)
	case usecase.CmdRemoveNote:
		return e.removeNote(req)
	case usecase.CmdPlayAudio:
		e.playing, e.position = true, req.At
		return okResponse, false, nil
	case usecase.CmdPauseAudio:
		e.playing = false
		return okResponse, false, nil
	}
	return nil, false, fmt.Errorf("%w: %s", ErrUnknownCommand, command)
}

func decode(payload map[string]any, req *request) error {
	if len(payload) == 0 {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
