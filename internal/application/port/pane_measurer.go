package port

import "github.com/bnema/panekit/internal/domain/entity"

//go:generate mockgen -source=pane_measurer.go -destination=mocks/mock_pane_measurer.go -package=mocks

// PaneMeasurer reports the current pixel box of a pane as laid out by the
// host toolkit. ok is false when the pane has not been measured yet.
type PaneMeasurer interface {
	Measure(id entity.PaneNodeID) (box entity.Rect, ok bool)
}
