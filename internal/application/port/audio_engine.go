package port

import (
	"context"
	"encoding/json"

	"github.com/bnema/panekit/internal/domain/entity"
)

//go:generate mockgen -source=audio_engine.go -destination=mocks/mock_audio_engine.go -package=mocks

// AudioEngine is the command surface of the external audio engine.
// Commands are keyed by name with a JSON-like payload.
type AudioEngine interface {
	// Invoke sends a command and waits for its response.
	Invoke(ctx context.Context, command string, payload map[string]any) (json.RawMessage, error)
	// Send fires a command without waiting for the outcome.
	Send(ctx context.Context, command string, payload map[string]any)
	// MixerState returns the latest mixer snapshot.
	MixerState(ctx context.Context) (*entity.MixerState, error)
}
