package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/theme"
)

const (
	timelineLabelWidth = 12
	minTimelineBeats   = 16
)

// TimelineView draws tracks as rows with their regions laid out along a beat
// ruler and the playhead as a vertical line.
type TimelineView struct {
	theme *theme.Theme
}

// NewTimelineView creates a timeline view.
func NewTimelineView(th *theme.Theme) *TimelineView {
	return &TimelineView{theme: th}
}

// Render implements ContentView.
func (v *TimelineView) Render(data entity.EditorData, width, height int) string {
	if data.Mixer == nil || len(data.Mixer.Tracks) == 0 {
		return placeholder(v.theme, "no tracks", width, height)
	}
	label := min(timelineLabelWidth, width/3)
	lane := width - label
	if lane <= 0 {
		return block(v.theme.Body, trackNames(data.Mixer), width, height)
	}

	beats := math.Max(data.Mixer.Duration, minTimelineBeats)
	col := func(beat float64) int {
		c := int(beat / beats * float64(lane))
		return max(0, min(c, lane-1))
	}
	playhead := col(data.CurrentBeat)

	lines := make([]string, 0, height)
	lines = append(lines, fit("", label)+ruler(lane, beats))

	for _, tr := range data.Mixer.Tracks {
		if len(lines) >= height {
			break
		}
		cells := []rune(strings.Repeat("·", lane))
		for _, r := range tr.Regions {
			for c := col(r.StartTime); c <= col(r.End()) && c < lane; c++ {
				cells[c] = '█'
			}
		}
		cells[playhead] = '│'

		marker := "  "
		if sel := data.Selection.TrackID; sel != nil && *sel == tr.ID {
			marker = "▸ "
		}
		lines = append(lines, fitEllipsis(marker+tr.Name, label)+string(cells))
	}
	return block(v.theme.Body, lines, width, height)
}

// ruler labels every fourth beat.
func ruler(lane int, beats float64) string {
	var b strings.Builder
	for c := 0; c < lane; {
		beat := int(float64(c) / float64(lane) * beats)
		if beat%4 == 0 {
			mark := fmt.Sprintf("%d", beat+1)
			if c+runewidth.StringWidth(mark) > lane {
				break
			}
			b.WriteString(mark)
			c += len(mark)
			for c < lane && int(float64(c)/float64(lane)*beats) == beat {
				b.WriteByte(' ')
				c++
			}
			continue
		}
		b.WriteByte(' ')
		c++
	}
	return b.String()
}

func trackNames(m *entity.MixerState) []string {
	names := make([]string, 0, len(m.Tracks))
	for _, tr := range m.Tracks {
		names = append(names, tr.Name)
	}
	return names
}
