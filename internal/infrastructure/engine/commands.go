package engine

import (
	"fmt"
	"slices"

	"github.com/bnema/panekit/internal/domain/entity"
)

// request is the union of every command payload.
type request struct {
	TrackID  entity.TrackID     `json:"trackId"`
	RegionID entity.RegionID    `json:"regionId"`
	NodeID   entity.GraphNodeID `json:"nodeId"`
	NoteID   int                `json:"noteId"`

	TrackData *struct {
		Name      string `json:"name"`
		Channels  int    `json:"channels"`
		TrackType string `json:"track_type"`
	} `json:"trackData"`
	RegionData *struct {
		Name      string  `json:"name"`
		StartTime float64 `json:"start_time"`
		Duration  float64 `json:"duration"`
	} `json:"regionData"`
	NodeData *struct {
		NodeType string `json:"node_type"`
	} `json:"nodeData"`
	Note *struct {
		Pitch     int     `json:"pitch"`
		Velocity  int     `json:"velocity"`
		StartTime float64 `json:"start_time"`
		Duration  float64 `json:"duration"`
	} `json:"note"`

	Position  [2]float64         `json:"position"`
	NewBeats  float64            `json:"newBeats"`
	From      entity.GraphNodeID `json:"from"`
	FromParam string             `json:"fromParam"`
	To        entity.GraphNodeID `json:"to"`
	ToParam   string             `json:"toParam"`
	Code      string             `json:"code"`
	At        float64            `json:"at"`
}

type idResponse struct {
	ID any `json:"id"`
}

var okResponse = struct {
	OK bool `json:"ok"`
}{OK: true}

func (e *Engine) track(id entity.TrackID) (*entity.TrackState, error) {
	if tr := e.mixer.Track(id); tr != nil {
		return tr, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrTrackNotFound, id)
}

func (e *Engine) region(req *request) (*entity.TrackState, *entity.RegionState, error) {
	tr, err := e.track(req.TrackID)
	if err != nil {
		return nil, nil, err
	}
	for i := range tr.Regions {
		if tr.Regions[i].ID == req.RegionID {
			return tr, &tr.Regions[i], nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %d", ErrRegionNotFound, req.RegionID)
}

func (e *Engine) node(req *request) (*entity.TrackState, *entity.NodeState, error) {
	tr, err := e.track(req.TrackID)
	if err != nil {
		return nil, nil, err
	}
	n := tr.Graph.Node(req.NodeID)
	if n == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNodeNotFound, req.NodeID)
	}
	return tr, n, nil
}

// addTrack creates a track whose graph already routes its input node to its
// output node.
func (e *Engine) addTrack(req *request) (any, bool, error) {
	if req.TrackData == nil || req.TrackData.Name == "" {
		return nil, false, fmt.Errorf("%w: trackData.name is required", ErrInvalidPayload)
	}
	e.nextTrack++
	channels := req.TrackData.Channels
	if channels <= 0 {
		channels = 2
	}

	in := e.newNode("Input", "input", [2]float64{0, 0})
	in.IsInputNode = true
	in.Outputs = []string{"out"}
	out := e.newNode("Output", "output", [2]float64{240, 0})
	out.IsOutputNode = true
	out.Inputs = []string{"in"}

	e.mixer.Tracks = append(e.mixer.Tracks, entity.TrackState{
		ID:        e.nextTrack,
		Name:      req.TrackData.Name,
		Channels:  channels,
		TrackType: req.TrackData.TrackType,
		Graph: entity.GraphState{
			Nodes:       []entity.NodeState{in, out},
			Connections: []entity.ConnectorState{{From: in.ID, FromParam: "out", To: out.ID, ToParam: "in"}},
			InputNode:   in.ID,
			OutputNode:  out.ID,
		},
	})
	return idResponse{ID: e.nextTrack}, true, nil
}

func (e *Engine) removeTrack(req *request) (any, bool, error) {
	i := slices.IndexFunc(e.mixer.Tracks, func(t entity.TrackState) bool { return t.ID == req.TrackID })
	if i < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrTrackNotFound, req.TrackID)
	}
	e.mixer.Tracks = slices.Delete(e.mixer.Tracks, i, i+1)
	e.updateDuration()
	return okResponse, true, nil
}

func (e *Engine) addRegion(req *request) (any, bool, error) {
	tr, err := e.track(req.TrackID)
	if err != nil {
		return nil, false, err
	}
	rd := req.RegionData
	if rd == nil || rd.Duration <= 0 || rd.StartTime < 0 {
		return nil, false, fmt.Errorf("%w: regionData needs a positive duration", ErrInvalidPayload)
	}
	e.nextRegion++
	tr.Regions = append(tr.Regions, entity.RegionState{
		ID:        e.nextRegion,
		Name:      rd.Name,
		StartTime: rd.StartTime,
		Duration:  rd.Duration,
	})
	e.updateDuration()
	return idResponse{ID: e.nextRegion}, true, nil
}

func (e *Engine) moveRegion(req *request) (any, bool, error) {
	_, r, err := e.region(req)
	if err != nil {
		return nil, false, err
	}
	r.StartTime = max(0, req.NewBeats)
	e.updateDuration()
	return okResponse, true, nil
}

func (e *Engine) newNode(name, nodeType string, pos [2]float64) entity.NodeState {
	e.nextNode++
	return entity.NodeState{
		ID:       entity.GraphNodeID(fmt.Sprintf("n%d", e.nextNode)),
		Name:     name,
		NodeType: nodeType,
		Position: pos,
	}
}

func (e *Engine) addNode(req *request) (any, bool, error) {
	tr, err := e.track(req.TrackID)
	if err != nil {
		return nil, false, err
	}
	if req.NodeData == nil || req.NodeData.NodeType == "" {
		return nil, false, fmt.Errorf("%w: nodeData.node_type is required", ErrInvalidPayload)
	}
	n := e.newNode(req.NodeData.NodeType, req.NodeData.NodeType, req.Position)
	n.Inputs = []string{"in"}
	n.Outputs = []string{"out"}
	tr.Graph.Nodes = append(tr.Graph.Nodes, n)
	return idResponse{ID: n.ID}, true, nil
}

// removeNode deletes a node and every connection touching it. The track's
// input and output nodes cannot be removed.
func (e *Engine) removeNode(req *request) (any, bool, error) {
	tr, n, err := e.node(req)
	if err != nil {
		return nil, false, err
	}
	if n.IsInputNode || n.IsOutputNode {
		return nil, false, fmt.Errorf("%w: %s is a track endpoint", ErrInvalidPayload, n.ID)
	}
	id := n.ID
	tr.Graph.Nodes = slices.DeleteFunc(tr.Graph.Nodes, func(s entity.NodeState) bool { return s.ID == id })
	tr.Graph.Connections = slices.DeleteFunc(tr.Graph.Connections, func(c entity.ConnectorState) bool {
		return c.From == id || c.To == id
	})
	return okResponse, true, nil
}

func (e *Engine) moveNode(req *request) (any, bool, error) {
	_, n, err := e.node(req)
	if err != nil {
		return nil, false, err
	}
	n.Position = req.Position
	return okResponse, true, nil
}

func (e *Engine) connector(req *request) (*entity.TrackState, entity.ConnectorState, error) {
	tr, err := e.track(req.TrackID)
	if err != nil {
		return nil, entity.ConnectorState{}, err
	}
	c := entity.ConnectorState{From: req.From, FromParam: req.FromParam, To: req.To, ToParam: req.ToParam}
	for _, id := range []entity.GraphNodeID{c.From, c.To} {
		if tr.Graph.Node(id) == nil {
			return nil, c, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
		}
	}
	return tr, c, nil
}

func (e *Engine) connect(req *request) (any, bool, error) {
	tr, c, err := e.connector(req)
	if err != nil {
		return nil, false, err
	}
	if slices.Contains(tr.Graph.Connections, c) {
		return nil, false, ErrAlreadyConnected
	}
	tr.Graph.Connections = append(tr.Graph.Connections, c)
	return okResponse, true, nil
}

func (e *Engine) disconnect(req *request) (any, bool, error) {
	tr, c, err := e.connector(req)
	if err != nil {
		return nil, false, err
	}
	i := slices.Index(tr.Graph.Connections, c)
	if i < 0 {
		return nil, false, ErrNotConnected
	}
	tr.Graph.Connections = slices.Delete(tr.Graph.Connections, i, i+1)
	return okResponse, true, nil
}

func (e *Engine) setShaderCode(req *request) (any, bool, error) {
	_, n, err := e.node(req)
	if err != nil {
		return nil, false, err
	}
	n.ShaderCode = req.Code
	return okResponse, true, nil
}

func (e *Engine) addNote(req *request) (any, bool, error) {
	_, r, err := e.region(req)
	if err != nil {
		return nil, false, err
	}
	in := req.Note
	if in == nil || in.Duration <= 0 || in.Pitch < 0 || in.Pitch > 127 {
		return nil, false, fmt.Errorf("%w: note needs a pitch in 0..127 and a positive duration", ErrInvalidPayload)
	}
	e.nextNote++
	r.Notes = append(r.Notes, entity.NoteState{
		ID:        e.nextNote,
		Pitch:     in.Pitch,
		Velocity:  in.Velocity,
		StartTime: in.StartTime,
		Duration:  in.Duration,
	})
	return idResponse{ID: e.nextNote}, true, nil
}

func (e *Engine) removeNote(req *request) (any, bool, error) {
	_, r, err := e.region(req)
	if err != nil {
		return nil, false, err
	}
	i := slices.IndexFunc(r.Notes, func(n entity.NoteState) bool { return n.ID == req.NoteID })
	if i < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrNoteNotFound, req.NoteID)
	}
	r.Notes = slices.Delete(r.Notes, i, i+1)
	return okResponse, true, nil
}

// updateDuration keeps the session at least defaultDuration beats long and
// long enough for its last region.
func (e *Engine) updateDuration() {
	d := defaultDuration
	for _, tr := range e.mixer.Tracks {
		for _, r := range tr.Regions {
			d = max(d, r.End())
		}
	}
	e.mixer.Duration = d
}

func cloneMixer(m entity.MixerState) entity.MixerState {
	out := m
	out.Tracks = make([]entity.TrackState, len(m.Tracks))
	for i, tr := range m.Tracks {
		tr.Regions = slices.Clone(tr.Regions)
		for j := range tr.Regions {
			tr.Regions[j].Notes = slices.Clone(tr.Regions[j].Notes)
		}
		tr.Graph.Nodes = slices.Clone(tr.Graph.Nodes)
		for j := range tr.Graph.Nodes {
			n := &tr.Graph.Nodes[j]
			n.Inputs = slices.Clone(n.Inputs)
			n.Outputs = slices.Clone(n.Outputs)
		}
		tr.Graph.Connections = slices.Clone(tr.Graph.Connections)
		out.Tracks[i] = tr
	}
	return out
}
