package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	logFile *os.File
	// warnOut receives the highlighted copy of every warning.
	warnOut io.Writer = os.Stderr
)

func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// InitFileOnly routes log output to logPath alone, keeping stdout free for
// command output such as Markdown or interactive views.
func InitFileOnly(logPath string) error {
	if err := Init(logPath); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogWarning logs msg and echoes it in yellow on stderr.
func LogWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println("WARNING " + msg)
	mu.Lock()
	out := warnOut
	mu.Unlock()
	color.New(color.FgYellow).Fprintln(out, "warning: "+msg)
}

// LogStage records one pipeline stage for a source file with optional details.
func LogStage(stage, source string, details any) {
	log.Println(buildStageMessage(stage, source, details))
}

func buildStageMessage(stage, source string, details any) string {
	name := strings.ToUpper(strings.TrimSpace(stage))
	if name == "" {
		name = "STAGE"
	}
	src := strings.TrimSpace(source)
	if src == "" {
		src = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", name), fmt.Sprintf("source=%s", src)}
	if details != nil {
		parts = append(parts, fmt.Sprintf("details=%s", formatDetails(details)))
	}
	return strings.Join(parts, " ")
}

func formatDetails(details any) string {
	switch v := details.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// EngineLogger adapts the package logger for the analysis engine. Every
// message it receives is a recoverable data issue, so it is logged as a
// warning.
type EngineLogger struct{}

func (EngineLogger) Printf(format string, args ...any) {
	LogWarning(format, args...)
}
