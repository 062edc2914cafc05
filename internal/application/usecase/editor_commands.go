package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/logging"
)

// Audio engine command names.
const (
	CmdAddTrack        = "add_track"
	CmdRemoveTrack     = "remove_track"
	CmdAddRegion       = "add_region"
	CmdMoveRegion      = "move_region"
	CmdAddNode         = "add_node"
	CmdRemoveNode      = "remove_node"
	CmdMoveNode        = "move_node"
	CmdConnectGraph    = "connect_graph"
	CmdDisconnectGraph = "disconnect_graph"
	CmdSetShaderCode   = "set_shader_code"
	CmdAddNote         = "add_note"
	CmdRemoveNote      = "remove_note"
	CmdPlayAudio       = "play_audio"
	CmdPauseAudio      = "pause_audio"
)

// ErrNoEngine is returned when commands are issued without an audio engine.
var ErrNoEngine = errors.New("audio engine not available")

// EditorCommandsUseCase turns view callbacks into audio engine commands and
// keeps the editor-wide playback position and selection.
type EditorCommandsUseCase struct {
	engine    port.AudioEngine
	beat      float64
	playing   bool
	selection entity.Selection

	// snapshot is the last mixer state read from the engine; nil until the
	// next read after a change.
	snapshot *entity.MixerState
	mu       sync.Mutex
}

// NewEditorCommandsUseCase creates the command bridge over engine.
func NewEditorCommandsUseCase(engine port.AudioEngine) *EditorCommandsUseCase {
	return &EditorCommandsUseCase{engine: engine}
}

// EditorData assembles the bundle handed to every leaf view.
func (uc *EditorCommandsUseCase) EditorData(ctx context.Context) entity.EditorData {
	data := entity.EditorData{
		CurrentBeat: uc.beat,
		IsPlaying:   uc.playing,
		Selection:   uc.selection,
	}
	if uc.engine == nil {
		return data
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.snapshot == nil {
		mixer, err := uc.engine.MixerState(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to read mixer state")
			return data
		}
		uc.snapshot = mixer
	}
	data.Mixer = uc.snapshot
	return data
}

// Invalidate drops the cached mixer snapshot so the next EditorData call
// reads the engine again. Safe to call from any goroutine.
func (uc *EditorCommandsUseCase) Invalidate() {
	uc.mu.Lock()
	uc.snapshot = nil
	uc.mu.Unlock()
}

// AddTrack creates a track in the engine.
func (uc *EditorCommandsUseCase) AddTrack(ctx context.Context, name string, channels int, trackType string) error {
	return uc.invoke(ctx, CmdAddTrack, map[string]any{
		"trackData": map[string]any{
			"name":       name,
			"channels":   channels,
			"track_type": trackType,
		},
	})
}

// RemoveTrack deletes a track and clears it from the selection.
func (uc *EditorCommandsUseCase) RemoveTrack(ctx context.Context, id entity.TrackID) error {
	if err := uc.invoke(ctx, CmdRemoveTrack, map[string]any{"trackId": id}); err != nil {
		return err
	}
	if uc.selection.TrackID != nil && *uc.selection.TrackID == id {
		uc.selection = entity.Selection{}
	}
	return nil
}

// AddRegion places a new region on a track.
func (uc *EditorCommandsUseCase) AddRegion(ctx context.Context, track entity.TrackID, name string, start, duration float64) error {
	return uc.invoke(ctx, CmdAddRegion, map[string]any{
		"trackId": track,
		"regionData": map[string]any{
			"name":       name,
			"start_time": start,
			"duration":   duration,
		},
	})
}

// MoveRegion moves a region to a new start beat.
func (uc *EditorCommandsUseCase) MoveRegion(ctx context.Context, track entity.TrackID, region entity.RegionID, beats float64) {
	uc.send(ctx, CmdMoveRegion, map[string]any{"trackId": track, "regionId": region, "newBeats": beats})
}

// AddNode adds a processing node to a track's graph.
func (uc *EditorCommandsUseCase) AddNode(ctx context.Context, track entity.TrackID, nodeType string, pos [2]float64) error {
	return uc.invoke(ctx, CmdAddNode, map[string]any{
		"trackId":  track,
		"nodeData": map[string]any{"node_type": nodeType},
		"position": pos,
	})
}

// RemoveNode deletes a graph node.
func (uc *EditorCommandsUseCase) RemoveNode(ctx context.Context, track entity.TrackID, node entity.GraphNodeID) error {
	return uc.invoke(ctx, CmdRemoveNode, map[string]any{"trackId": track, "nodeId": node})
}

// MoveNode repositions a graph node in the editor.
func (uc *EditorCommandsUseCase) MoveNode(ctx context.Context, track entity.TrackID, node entity.GraphNodeID, pos [2]float64) {
	uc.send(ctx, CmdMoveNode, map[string]any{"trackId": track, "nodeId": node, "position": pos})
}

// ConnectNodes links an output parameter to an input parameter.
func (uc *EditorCommandsUseCase) ConnectNodes(ctx context.Context, track entity.TrackID, c entity.ConnectorState) error {
	return uc.invoke(ctx, CmdConnectGraph, connectorPayload(track, c))
}

// DisconnectNodes removes a connection.
func (uc *EditorCommandsUseCase) DisconnectNodes(ctx context.Context, track entity.TrackID, c entity.ConnectorState) error {
	return uc.invoke(ctx, CmdDisconnectGraph, connectorPayload(track, c))
}

// SetShaderCode replaces the source of a shader node.
func (uc *EditorCommandsUseCase) SetShaderCode(ctx context.Context, track entity.TrackID, node entity.GraphNodeID, code string) error {
	return uc.invoke(ctx, CmdSetShaderCode, map[string]any{"trackId": track, "nodeId": node, "code": code})
}

// AddNote inserts a note into a region.
func (uc *EditorCommandsUseCase) AddNote(ctx context.Context, track entity.TrackID, region entity.RegionID, note entity.NoteState) error {
	return uc.invoke(ctx, CmdAddNote, map[string]any{
		"trackId":  track,
		"regionId": region,
		"note": map[string]any{
			"pitch":      note.Pitch,
			"velocity":   note.Velocity,
			"start_time": note.StartTime,
			"duration":   note.Duration,
		},
	})
}

// RemoveNote deletes a note from a region.
func (uc *EditorCommandsUseCase) RemoveNote(ctx context.Context, track entity.TrackID, region entity.RegionID, noteID int) error {
	return uc.invoke(ctx, CmdRemoveNote, map[string]any{"trackId": track, "regionId": region, "noteId": noteID})
}

// Play starts playback at the current beat.
func (uc *EditorCommandsUseCase) Play(ctx context.Context) {
	uc.send(ctx, CmdPlayAudio, map[string]any{"at": uc.beat})
	uc.playing = true
}

// Pause stops playback.
func (uc *EditorCommandsUseCase) Pause(ctx context.Context) {
	uc.send(ctx, CmdPauseAudio, nil)
	uc.playing = false
}

// Seek moves the playhead and pauses playback.
func (uc *EditorCommandsUseCase) Seek(ctx context.Context, beats float64) {
	if beats < 0 {
		beats = 0
	}
	uc.beat = beats
	uc.Pause(ctx)
}

// Advance moves the playhead forward while playing, capped at the mixer duration.
func (uc *EditorCommandsUseCase) Advance(ctx context.Context, beats float64) {
	if !uc.playing {
		return
	}
	uc.beat += beats
	if mixer := uc.EditorData(ctx).Mixer; mixer != nil && mixer.Duration > 0 && uc.beat > mixer.Duration {
		uc.beat = mixer.Duration
	}
}

// SelectTrack sets the selected track and clears nested selections.
func (uc *EditorCommandsUseCase) SelectTrack(id entity.TrackID) {
	uc.selection = entity.Selection{TrackID: &id}
}

// SelectNode selects a graph node on a track.
func (uc *EditorCommandsUseCase) SelectNode(track entity.TrackID, node entity.GraphNodeID) {
	uc.selection = entity.Selection{TrackID: &track, NodeID: &node}
}

// SelectRegion selects a region on a track.
func (uc *EditorCommandsUseCase) SelectRegion(track entity.TrackID, region entity.RegionID) {
	uc.selection = entity.Selection{TrackID: &track, RegionID: &region}
}

func (uc *EditorCommandsUseCase) invoke(ctx context.Context, command string, payload map[string]any) error {
	if uc.engine == nil {
		return ErrNoEngine
	}
	if _, err := uc.engine.Invoke(ctx, command, payload); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("command", command).Msg("engine command failed")
		return fmt.Errorf("%s: %w", command, err)
	}
	uc.Invalidate()
	return nil
}

func (uc *EditorCommandsUseCase) send(ctx context.Context, command string, payload map[string]any) {
	if uc.engine == nil {
		logging.FromContext(ctx).Debug().Str("command", command).Msg("dropping command: no engine")
		return
	}
	uc.engine.Send(ctx, command, payload)
}

func connectorPayload(track entity.TrackID, c entity.ConnectorState) map[string]any {
	return map[string]any{
		"trackId":   track,
		"from":      c.From,
		"fromParam": c.FromParam,
		"to":        c.To,
		"toParam":   c.ToParam,
	}
}
