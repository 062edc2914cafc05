package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panekit/internal/domain/entity"
)

func sequentialIDs() entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
}

func newTestUseCase() *ManagePanesUseCase {
	ws := entity.NewWorkspace("ws", entity.ContentTimeline)
	return NewManagePanesUseCase(ws, sequentialIDs())
}

func TestManagePanesUseCase_SplitAssignsFreshIDs(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	var notified []*entity.PaneNode
	uc.OnChange(func(root *entity.PaneNode) { notified = append(notified, root) })

	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))

	root := uc.Root()
	require.True(t, root.IsSplit())
	assert.Equal(t, entity.RootPaneID, root.ID)
	assert.Equal(t, entity.PaneNodeID("c1"), root.First().ID)
	assert.Equal(t, entity.PaneNodeID("c2"), root.Second().ID)
	assert.Equal(t, entity.PaneNodeID("c1"), uc.Workspace().ActivePaneID, "selection follows the first half")
	require.Len(t, notified, 1)
	assert.Same(t, root, notified[0])
}

func TestManagePanesUseCase_NoOpsDoNotNotify(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisVertical, 0.5))

	calls := 0
	uc.OnChange(func(*entity.PaneNode) { calls++ })
	before := uc.Root()

	assert.False(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5), "split on split")
	assert.False(t, uc.Resize(ctx, "c1", 0.3), "resize on leaf")
	assert.False(t, uc.Resize(ctx, "missing", 0.3), "unknown id")
	assert.False(t, uc.Merge(ctx, "c1", "c2"), "merge on leaf")
	assert.False(t, uc.Merge(ctx, entity.RootPaneID, "missing"), "not a direct child")
	assert.False(t, uc.SetContentType(ctx, entity.RootPaneID, entity.ContentPianoRoll), "content on split")
	assert.False(t, uc.SetContentType(ctx, "c1", entity.ContentType(99)), "invalid content")
	assert.False(t, uc.Resize(ctx, entity.RootPaneID, 0.5), "same size")

	assert.Same(t, before, uc.Root())
	assert.Zero(t, calls)
}

func TestManagePanesUseCase_ResizeKeepsIDs(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))
	before := uc.Root().IDs()

	require.True(t, uc.Resize(ctx, entity.RootPaneID, 0.625))

	assert.Equal(t, 0.625, uc.Root().Size)
	assert.Equal(t, before, uc.Root().IDs())
}

func TestManagePanesUseCase_MergeMovesDiscardedSelection(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))
	require.True(t, uc.Focus("c2"))

	require.True(t, uc.Merge(ctx, entity.RootPaneID, "c1"))

	assert.True(t, uc.Root().IsLeaf())
	assert.Equal(t, entity.RootPaneID, uc.Workspace().ActivePaneID)
	assert.NotNil(t, uc.Workspace().ActivePane())
}

func TestManagePanesUseCase_MergeKeepsSurvivingSelection(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))
	require.True(t, uc.Split(ctx, "c2", entity.AxisVertical, 0.5))
	require.True(t, uc.Focus("c4"))

	require.True(t, uc.Merge(ctx, entity.RootPaneID, "c2"))

	assert.Equal(t, entity.PaneNodeID("c4"), uc.Workspace().ActivePaneID)
	assert.Equal(t, entity.RootPaneID, uc.Root().ID)
	assert.Equal(t, entity.AxisVertical, uc.Root().Axis)
}

func TestManagePanesUseCase_EndToEndScenario(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))
	require.True(t, uc.SetContentType(ctx, "c2", entity.ContentGraphEditor))

	root := uc.Root()
	assert.Equal(t, entity.ContentTimeline, root.First().ContentType)
	assert.Equal(t, entity.ContentGraphEditor, root.Second().ContentType)

	require.True(t, uc.Merge(ctx, entity.RootPaneID, "c1"))
	root = uc.Root()
	assert.True(t, root.IsLeaf())
	assert.Equal(t, entity.RootPaneID, root.ID)
	assert.Equal(t, entity.ContentTimeline, root.ContentType)
}

func TestManagePanesUseCase_FocusNextAndClose(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	assert.False(t, uc.CloseActive(ctx), "root leaf cannot be closed")

	require.True(t, uc.Split(ctx, entity.RootPaneID, entity.AxisHorizontal, 0.5))
	require.True(t, uc.Split(ctx, "c2", entity.AxisVertical, 0.5))

	assert.Equal(t, entity.PaneNodeID("c3"), uc.FocusNext())
	assert.Equal(t, entity.PaneNodeID("c4"), uc.FocusNext())
	assert.Equal(t, entity.PaneNodeID("c1"), uc.FocusNext())
	assert.False(t, uc.Focus(entity.RootPaneID), "splits cannot be focused")

	require.True(t, uc.Focus("c3"))
	require.True(t, uc.CloseActive(ctx))

	node := uc.Root().Find("c2")
	require.NotNil(t, node)
	assert.True(t, node.IsLeaf(), "c2 collapsed onto c4")
	assert.Nil(t, uc.Root().Find("c3"))
	assert.Equal(t, entity.PaneNodeID("c2"), uc.Workspace().ActivePaneID)
}

func TestNewUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()
	a, b := gen(), gen()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
