package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "GOUI_DEBUG"

var (
	out      io.Writer
	closer   io.Closer
	mu       sync.Mutex
	resolved bool
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. It overrides GOUI_DEBUG.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	resolved = true
	return openLocked(path)
}

// SetOutput directs debug logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	resolved = true
	out = w
}

func openLocked(path string) error {
	closeLocked()

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	out = f
	closer = f
	return nil
}

func closeLocked() {
	if closer != nil {
		closer.Close()
	}
	out = nil
	closer = nil
}

// Close closes the debug log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if closer != nil {
		err = closer.Close()
	}
	out = nil
	closer = nil
	return err
}

// Enabled reports whether log output is configured.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return out != nil
}

// resolveLocked opens GOUI_DEBUG on first use unless Init or SetOutput ran.
func resolveLocked() {
	if resolved {
		return
	}
	resolved = true
	if path := os.Getenv(EnvVar); path != "" {
		// Logging is best-effort; a bad path leaves it disabled.
		_ = openLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	resolveLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}
