package misc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LokiClient writes request logs as JSON lines that Alloy ships to Grafana
// Loki.  Writing to local files rather than pushing directly means logging
// survives Loki downtime and never blocks a request.
type LokiClient struct {
	enabled      bool
	jsonFilePath string
	fileMutex    sync.Mutex
	currentFile  *os.File
	currentDate  string
}

type lokiJsonLogEntry struct {
	Timestamp string            `json:"timestamp"`
	Labels    map[string]string `json:"labels"`
	Message   json.RawMessage   `json:"message"`
}

var lokiInstance *LokiClient
var lokiOnce sync.Once

// GetLoki returns the singleton Loki client instance.
func GetLoki() *LokiClient {
	lokiOnce.Do(func() {
		enabled := os.Getenv("LOKI_ENABLED") == "true" || os.Getenv("LOKI_ENABLED") == "1"
		jsonFilePath := os.Getenv("LOKI_JSON_PATH")

		if enabled && jsonFilePath == "" {
			fmt.Println("Loki enabled but LOKI_JSON_PATH not set, disabling Loki")
			enabled = false
		}

		lokiInstance = &LokiClient{
			enabled:      enabled,
			jsonFilePath: jsonFilePath,
		}

		if enabled {
			if err := os.MkdirAll(jsonFilePath, 0755); err != nil {
				fmt.Printf("Failed to create Loki log directory %s: %v\n", jsonFilePath, err)
			}
		}
	})
	return lokiInstance
}

// IsEnabled returns whether Loki logging is enabled.
func (l *LokiClient) IsEnabled() bool {
	return l.enabled
}

// LogRequest logs one handled request.
func (l *LokiClient) LogRequest(method, endpoint string, statusCode int, durationMs float64) {
	if !l.enabled {
		return
	}

	// 4xx is normal traffic (bad logins, bounced admin requests); only 5xx
	// counts as an error.
	level := "info"
	if statusCode >= 500 {
		level = "error"
	}

	labels := map[string]string{
		"app":         "euromove",
		"source":      "api",
		"method":      method,
		"status_code": fmt.Sprintf("%d", statusCode),
		"level":       level,
	}

	message, _ := json.Marshal(map[string]interface{}{
		"endpoint":    endpoint,
		"duration_ms": durationMs,
		"timestamp":   time.Now().Format(time.RFC3339),
	})

	l.log(labels, message)
}

// log appends a JSON line to today's log file, rotating the file handle when
// the date rolls over.
func (l *LokiClient) log(labels map[string]string, message json.RawMessage) {
	l.fileMutex.Lock()
	defer l.fileMutex.Unlock()

	today := time.Now().Format("2006-01-02")

	if l.currentFile == nil || l.currentDate != today {
		if l.currentFile != nil {
			l.currentFile.Close()
		}

		path := filepath.Join(l.jsonFilePath, "api-"+today+".log")
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("Failed to open Loki log file %s: %v\n", path, err)
			return
		}

		l.currentFile = f
		l.currentDate = today
	}

	entry := lokiJsonLogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Labels:    labels,
		Message:   message,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.currentFile.Write(append(line, '\n'))
}
