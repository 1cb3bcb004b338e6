package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if tt.level.String() != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, tt.level.String(), tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldCreators(t *testing.T) {
	f := String("key", "value")
	if f.Key != "key" || f.Value != "value" {
		t.Errorf("String field incorrect: %+v", f)
	}

	f = Strings("inputs", []string{"a.txt", "b.txt"})
	if f.Key != "inputs" || f.Value != "a.txt,b.txt" {
		t.Errorf("Strings field incorrect: %+v", f)
	}

	f = Int("count", 42)
	if f.Key != "count" || f.Value != 42 {
		t.Errorf("Int field incorrect: %+v", f)
	}

	f = Bool("recursive", true)
	if f.Key != "recursive" || f.Value != true {
		t.Errorf("Bool field incorrect: %+v", f)
	}

	f = Err(errors.New("test error"))
	if f.Key != "error" || f.Value != "test error" {
		t.Errorf("Err field incorrect: %+v", f)
	}

	f = Err(nil)
	if f.Key != "error" || f.Value != nil {
		t.Errorf("Err(nil) field incorrect: %+v", f)
	}

	f = Duration("elapsed", 5*time.Second)
	if f.Key != "elapsed" || f.Value != "5s" {
		t.Errorf("Duration field incorrect: %+v", f)
	}
}

func TestNullLogger(t *testing.T) {
	logger := &nullLogger{}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	child := logger.WithFields(String("key", "value"))
	if child != logger {
		t.Error("nullLogger.WithFields should return same instance")
	}
}

func TestSimpleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSimpleLogger(&buf, LevelInfo)

	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message should be filtered at Info level")
	}

	logger.Info("info message", String("key", "value"))
	output := buf.String()
	if !strings.Contains(output, "INFO info message") {
		t.Errorf("Info line missing level or message: %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Info line missing field: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("each log line should end with a newline")
	}

	buf.Reset()
	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "WARN") {
		t.Error("Warn message should contain WARN level")
	}

	buf.Reset()
	logger.Error("error message")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Error("Error message should contain ERROR level")
	}
}

func TestSimpleLoggerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSimpleLogger(&buf, LevelDebug)

	logger.Info("spawn", String("path", "/Applications/Roe GUI/roe-cli"))
	if !strings.Contains(buf.String(), `path="/Applications/Roe GUI/roe-cli"`) {
		t.Errorf("values with spaces should be quoted, got %q", buf.String())
	}
}

func TestSimpleLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSimpleLogger(&buf, LevelDebug)

	child := logger.WithFields(String("batch", "b-1"))
	child.Info("message", String("extra", "field"))
	logger.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "batch=b-1") || !strings.Contains(lines[0], "extra=field") {
		t.Errorf("child line should carry both fields: %q", lines[0])
	}
	if strings.Contains(lines[1], "batch=") {
		t.Errorf("parent should not inherit child fields: %q", lines[1])
	}
}

func TestDefaultLogger(t *testing.T) {
	if _, ok := GetLogger().(*nullLogger); !ok {
		t.Error("Default logger should be null logger")
	}

	var buf bytes.Buffer
	SetLogger(NewSimpleLogger(&buf, LevelDebug))

	Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Error("Custom logger should receive messages")
	}

	SetLogger(nil)
	if _, ok := GetLogger().(*nullLogger); !ok {
		t.Error("SetLogger(nil) should set null logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewSimpleLogger(&buf, LevelDebug))
	defer SetLogger(nil)

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	output := buf.String()
	for _, lvl := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !strings.Contains(output, lvl) {
			t.Errorf("output should contain %s line", lvl)
		}
	}
}

func TestSetup(t *testing.T) {
	defer SetLogger(nil)

	t.Run("FileTarget", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roe-gui.log")
		closer, err := Setup("debug", path)
		if err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		Debug("written to file")
		if err := closer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		SetLogger(nil)

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "written to file") {
			t.Errorf("log file missing line: %q", data)
		}
	})

	t.Run("BadLevel", func(t *testing.T) {
		if _, err := Setup("loud", ""); err == nil {
			t.Error("Setup should reject unknown level")
		}
	})

	t.Run("BadPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
		if _, err := Setup("info", path); err == nil {
			t.Error("Setup should fail for an unwritable path")
		}
	})
}
