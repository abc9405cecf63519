package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func Test_LoggerWritesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	log := Logger(logrus.InfoLevel, LogConfig{Dir: dir, Name: "engine"})
	log.Infof("hand %d started", 1)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "engine-") {
		t.Fatalf("log dir entries = %v, want one engine-*.log", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hand 1 started") {
		t.Fatalf("log content %q missing the message", data)
	}
}

func Test_SafeRotateLogsRecreates(t *testing.T) {
	dir := t.TempDir()
	w, err := newWriter(LogConfig{Dir: dir, Name: "engine", MaxAge: time.Hour, Rotation: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("first\n")); err != nil {
		t.Fatal(err)
	}

	// 当前文件被外部清理后，下一次写入要重建
	if err := os.Remove(w.CurrentFileName()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("second\n")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(w.CurrentFileName())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "second") {
		t.Fatalf("recreated log %q missing the line", data)
	}
}
