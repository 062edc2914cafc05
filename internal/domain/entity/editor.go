package entity

// TrackID identifies a track in the mixer.
type TrackID int

// RegionID identifies a region inside a track.
type RegionID int

// GraphNodeID identifies a node in a track's processing graph.
type GraphNodeID string

// MixerState is the snapshot of the audio engine the editor views display.
// The layout engine passes it through without interpreting it.
type MixerState struct {
	Tracks         []TrackState `json:"tracks"`
	BPM            float64      `json:"bpm"`
	SamplesPerBeat int          `json:"samples_per_beat"`
	Duration       float64      `json:"duration"`
}

// Track returns the track with the given id, or nil.
func (m *MixerState) Track(id TrackID) *TrackState {
	if m == nil {
		return nil
	}
	for i := range m.Tracks {
		if m.Tracks[i].ID == id {
			return &m.Tracks[i]
		}
	}
	return nil
}

// TrackState describes one track.
type TrackState struct {
	ID        TrackID       `json:"id"`
	Name      string        `json:"name"`
	Channels  int           `json:"channels"`
	TrackType string        `json:"track_type"`
	Regions   []RegionState `json:"regions"`
	Graph     GraphState    `json:"graph"`
}

// RegionState describes a region placed on a track, in beats.
type RegionState struct {
	ID        RegionID    `json:"id"`
	Name      string      `json:"name"`
	StartTime float64     `json:"start_time"`
	Duration  float64     `json:"duration"`
	Notes     []NoteState `json:"notes,omitempty"`
}

// End returns the beat at which the region stops.
func (r RegionState) End() float64 {
	return r.StartTime + r.Duration
}

// NoteState is a MIDI note inside a region.
type NoteState struct {
	ID        int     `json:"id"`
	Pitch     int     `json:"pitch"`
	Velocity  int     `json:"velocity"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
}

// GraphState is a track's node graph.
type GraphState struct {
	Nodes       []NodeState      `json:"nodes"`
	Connections []ConnectorState `json:"connections"`
	InputNode   GraphNodeID      `json:"input_node"`
	OutputNode  GraphNodeID      `json:"output_node"`
}

// Node returns the graph node with the given id, or nil.
func (g *GraphState) Node(id GraphNodeID) *NodeState {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// NodeState is one processing node.
type NodeState struct {
	ID           GraphNodeID `json:"id"`
	Name         string      `json:"name"`
	NodeType     string      `json:"node_type"`
	Inputs       []string    `json:"inputs"`
	Outputs      []string    `json:"outputs"`
	IsInputNode  bool        `json:"is_input_node"`
	IsOutputNode bool        `json:"is_output_node"`
	Position     [2]float64  `json:"position"`
	ShaderCode   string      `json:"shader_code,omitempty"`
}

// ConnectorState links an output parameter to an input parameter.
type ConnectorState struct {
	From      GraphNodeID `json:"from"`
	FromParam string      `json:"from_param"`
	To        GraphNodeID `json:"to"`
	ToParam   string      `json:"to_param"`
}

// Selection is the editor-wide selection shared by all views.
type Selection struct {
	TrackID  *TrackID
	RegionID *RegionID
	NodeID   *GraphNodeID
}

// EditorData is the bundle every leaf view receives.
type EditorData struct {
	Mixer       *MixerState
	CurrentBeat float64
	IsPlaying   bool
	Selection   Selection
}
