// logger.go provides file-based logging for ALL AI interactions.
//
// Logs are written to ~/.askdb/logs/ai.log with timestamps.
// Covers: GenerateSQL and FormatAnswer.
package ai

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	logOnce sync.Once
	logFile *os.File
)

// initLog opens (or creates) the log file. Called once lazily.
func initLog() {
	logOnce.Do(func() {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return
		}
		logDir := filepath.Join(homeDir, ".askdb", "logs")
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return
		}
		logPath := filepath.Join(logDir, "ai.log")
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return
		}
		logFile = f
	})
}

func logWrite(s string) {
	initLog()
	if logFile != nil {
		logFile.WriteString(s) //nolint:errcheck
	}
}

// LogRequest logs an AI request with the given operation name and input details.
func LogRequest(operation string, provider string, details map[string]string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n════════════════════════════════════════════════════════════════\n"+
			"[REQUEST] %s  |  Op: %s  |  Provider: %s\n"+
			"════════════════════════════════════════════════════════════════\n",
		ts, operation, provider,
	))
	for k, v := range details {
		sb.WriteString(fmt.Sprintf("%s:\n%s\n────────────────────────────────────────\n", k, v))
	}
	logWrite(sb.String())
}

// LogResponse logs an AI response with the given operation name.
func LogResponse(operation string, response string, err error) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	errStr := "(none)"
	if err != nil {
		errStr = err.Error()
	}
	entry := fmt.Sprintf(
		"[RESPONSE] %s  |  Op: %s\n"+
			"────────────────────────────────────────\n"+
			"Error: %s\n"+
			"────────────────────────────────────────\n"+
			"Response:\n%s\n"+
			"════════════════════════════════════════════════════════════════\n\n",
		ts, operation, errStr, response,
	)
	logWrite(entry)
}
