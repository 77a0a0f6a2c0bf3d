// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bundlescope/core/internal/models"
)

// ErrInvalidFormat is returned when a stats object carries none of the
// modules, assets and chunks collections. Present-but-empty collections
// are valid.
var ErrInvalidFormat = errors.New("stats contain none of modules, assets or chunks")

// ParseStats decodes raw bundler stats JSON into a RawStats object.
func ParseStats(data []byte) (*models.RawStats, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty stats data")
	}

	var raw models.RawStats
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &raw, nil
}
