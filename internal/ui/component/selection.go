package component

import "github.com/bnema/panekit/internal/domain/entity"

// selectedTrack returns the selected track, falling back to the first one.
func selectedTrack(data entity.EditorData) *entity.TrackState {
	m := data.Mixer
	if m == nil || len(m.Tracks) == 0 {
		return nil
	}
	if id := data.Selection.TrackID; id != nil {
		if tr := m.Track(*id); tr != nil {
			return tr
		}
	}
	return &m.Tracks[0]
}

// selectedNode returns the selected node of the selected track.
func selectedNode(data entity.EditorData) (*entity.TrackState, *entity.NodeState) {
	tr := selectedTrack(data)
	if tr == nil || data.Selection.NodeID == nil {
		return tr, nil
	}
	return tr, tr.Graph.Node(*data.Selection.NodeID)
}

// selectedRegion returns the selected region of the selected track, falling
// back to its first region with notes.
func selectedRegion(data entity.EditorData) *entity.RegionState {
	tr := selectedTrack(data)
	if tr == nil {
		return nil
	}
	if id := data.Selection.RegionID; id != nil {
		for i := range tr.Regions {
			if tr.Regions[i].ID == *id {
				return &tr.Regions[i]
			}
		}
	}
	for i := range tr.Regions {
		if len(tr.Regions[i].Notes) > 0 {
			return &tr.Regions[i]
		}
	}
	return nil
}
