package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Reporter appends JSON lines to a metrics log, one record per entry.
type Reporter struct {
	mu      sync.Mutex
	logFile *os.File
	enc     *json.Encoder
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		logFile: file,
		enc:     json.NewEncoder(file),
	}, nil
}

func (r *Reporter) Record(category string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := map[string]interface{}{
		"timestamp": time.Now(),
		"category":  category,
		"data":      data,
	}

	if err := r.enc.Encode(entry); err != nil {
		return fmt.Errorf("failed to record %s metrics: %w", category, err)
	}
	return nil
}

func (r *Reporter) Close() error {
	return r.logFile.Close()
}
