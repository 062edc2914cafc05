package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/domain/entity"
)

// Seed fills a fresh engine with a small demo session through the editor
// command surface, then selects the lead track's oscillator.
func Seed(ctx context.Context, e *Engine, editor *usecase.EditorCommandsUseCase) error {
	if err := editor.AddTrack(ctx, "Lead", 2, "midi"); err != nil {
		return err
	}
	if err := editor.AddTrack(ctx, "Drums", 2, "audio"); err != nil {
		return err
	}
	lead, drums := entity.TrackID(1), entity.TrackID(2)

	if err := editor.AddRegion(ctx, lead, "Intro", 0, 8); err != nil {
		return err
	}
	if err := editor.AddRegion(ctx, lead, "Hook", 12, 8); err != nil {
		return err
	}
	if err := editor.AddRegion(ctx, drums, "Beat", 0, 24); err != nil {
		return err
	}

	intro := entity.RegionID(1)
	for i, pitch := range []int{60, 64, 67, 72, 67, 64} {
		note := entity.NoteState{Pitch: pitch, Velocity: 96, StartTime: float64(i), Duration: 1}
		if err := editor.AddNote(ctx, lead, intro, note); err != nil {
			return err
		}
	}

	osc, err := addNode(ctx, e, lead, "oscillator", [2]float64{120, 0})
	if err != nil {
		return err
	}
	mixer, _ := e.MixerState(ctx)
	graph := mixer.Track(lead).Graph
	if err := editor.DisconnectNodes(ctx, lead, entity.ConnectorState{From: graph.InputNode, FromParam: "out", To: graph.OutputNode, ToParam: "in"}); err != nil {
		return err
	}
	if err := editor.ConnectNodes(ctx, lead, entity.ConnectorState{From: graph.InputNode, FromParam: "out", To: osc, ToParam: "in"}); err != nil {
		return err
	}
	if err := editor.ConnectNodes(ctx, lead, entity.ConnectorState{From: osc, FromParam: "out", To: graph.OutputNode, ToParam: "in"}); err != nil {
		return err
	}
	if err := editor.SetShaderCode(ctx, lead, osc, "out = sin(phase * 6.2831);"); err != nil {
		return err
	}

	editor.SelectNode(lead, osc)
	return nil
}

// addNode adds a node and returns the id the engine assigned to it.
func addNode(ctx context.Context, e *Engine, track entity.TrackID, nodeType string, pos [2]float64) (entity.GraphNodeID, error) {
	raw, err := e.Invoke(ctx, usecase.CmdAddNode, map[string]any{
		"trackId":  track,
		"nodeData": map[string]any{"node_type": nodeType},
		"position": pos,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		ID entity.GraphNodeID `json:"id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode %s response: %w", usecase.CmdAddNode, err)
	}
	return resp.ID, nil
}
