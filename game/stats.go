package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// RunStats is the summary of one run, from NewGame or Reset until the next
// Reset or shutdown. It never contains grid contents.
type RunStats struct {
	UUID        string    `json:"uuid"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Generation  int       `json:"generation"`
	OnCells     int       `json:"on_cells"`
	PeakOnCells int       `json:"peak_on_cells"`
	mutex       sync.RWMutex
}

func NewRunStats(id string, startTime time.Time) *RunStats {
	return &RunStats{
		UUID:      id,
		StartTime: startTime,
	}
}

// Observe records the current generation and on-cell count.
func (s *RunStats) Observe(generation, onCells int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.Generation = generation
	s.OnCells = onCells
	if onCells > s.PeakOnCells {
		s.PeakOnCells = onCells
	}
}

// Finish stamps the end of the run.
func (s *RunStats) Finish(endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.EndTime = endTime
}

// StepsPerSecond is the average simulation speed over the run.
func (s *RunStats) StepsPerSecond() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	elapsed := end.Sub(s.StartTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Generation-1) / elapsed
}

// SaveToFile writes the summary as indented JSON.
func (s *RunStats) SaveToFile(filename string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
