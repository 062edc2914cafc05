package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/panekit/internal/application/port/mocks"
	"github.com/bnema/panekit/internal/domain/entity"
)

func TestEditorCommands_AddTrackInvokesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)

	engine.EXPECT().
		Invoke(gomock.Any(), CmdAddTrack, map[string]any{
			"trackData": map[string]any{"name": "Drums", "channels": 2, "track_type": "BufferTrack"},
		}).
		Return(json.RawMessage(`{}`), nil)

	require.NoError(t, uc.AddTrack(context.Background(), "Drums", 2, "BufferTrack"))
}

func TestEditorCommands_EngineErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)
	boom := errors.New("boom")

	engine.EXPECT().Invoke(gomock.Any(), CmdRemoveNode, gomock.Any()).Return(nil, boom)

	err := uc.RemoveNode(context.Background(), 1, "n1")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), CmdRemoveNode)
}

func TestEditorCommands_NoEngine(t *testing.T) {
	uc := NewEditorCommandsUseCase(nil)
	ctx := context.Background()

	assert.ErrorIs(t, uc.AddTrack(ctx, "x", 1, "BufferTrack"), ErrNoEngine)
	uc.MoveRegion(ctx, 1, 1, 4)

	data := uc.EditorData(ctx)
	assert.Nil(t, data.Mixer)
}

func TestEditorCommands_PlaybackAndSeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)
	ctx := context.Background()

	engine.EXPECT().Send(gomock.Any(), CmdPlayAudio, map[string]any{"at": 0.0})
	engine.EXPECT().Send(gomock.Any(), CmdPauseAudio, gomock.Nil())
	engine.EXPECT().MixerState(gomock.Any()).Return(&entity.MixerState{Duration: 16}, nil).AnyTimes()

	uc.Play(ctx)
	uc.Advance(ctx, 20)
	data := uc.EditorData(ctx)
	assert.True(t, data.IsPlaying)
	assert.Equal(t, 16.0, data.CurrentBeat, "playhead is capped at the mixer duration")

	uc.Seek(ctx, -3)
	data = uc.EditorData(ctx)
	assert.False(t, data.IsPlaying)
	assert.Zero(t, data.CurrentBeat)
}

func TestEditorCommands_RemoveSelectedTrackClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)

	engine.EXPECT().Invoke(gomock.Any(), CmdRemoveTrack, map[string]any{"trackId": entity.TrackID(3)}).Return(nil, nil)

	uc.SelectNode(3, "osc")
	require.NoError(t, uc.RemoveTrack(context.Background(), 3))
	assert.Nil(t, uc.selection.TrackID)
	assert.Nil(t, uc.selection.NodeID)
}

func TestEditorCommands_SnapshotReusedUntilChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)
	ctx := context.Background()

	first := &entity.MixerState{Duration: 8}
	second := &entity.MixerState{Duration: 12}
	gomock.InOrder(
		engine.EXPECT().MixerState(gomock.Any()).Return(first, nil),
		engine.EXPECT().Invoke(gomock.Any(), CmdAddRegion, gomock.Any()).Return(json.RawMessage(`{"id":1}`), nil),
		engine.EXPECT().MixerState(gomock.Any()).Return(second, nil),
	)

	assert.Same(t, first, uc.EditorData(ctx).Mixer)
	assert.Same(t, first, uc.EditorData(ctx).Mixer, "no engine read without a change")

	require.NoError(t, uc.AddRegion(ctx, 1, "Verse", 0, 4))
	assert.Same(t, second, uc.EditorData(ctx).Mixer)
}

func TestEditorCommands_InvalidateForcesRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockAudioEngine(ctrl)
	uc := NewEditorCommandsUseCase(engine)
	ctx := context.Background()

	engine.EXPECT().MixerState(gomock.Any()).Return(&entity.MixerState{}, nil).Times(2)

	uc.EditorData(ctx)
	uc.Invalidate()
	uc.EditorData(ctx)
}
