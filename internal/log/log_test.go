package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestInitWithFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowsim.log")
	if err := InitWithFile(false, FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}); err != nil {
		t.Fatal(err)
	}
	defer Sync()

	Debugf("hidden at info level %d", 1)
	Infof("loaded %s", "snowsim.yaml")
	Warnf("no seed")

	entries := readLogLines(t, path)
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, expected 2: %v", len(entries), entries)
	}
	if entries[0]["msg"] != "loaded snowsim.yaml" || entries[0]["level"] != "info" {
		t.Errorf("first entry = %v", entries[0])
	}
	if entries[1]["level"] != "warn" {
		t.Errorf("second entry level = %v, expected warn", entries[1]["level"])
	}
	if _, ok := entries[0]["ts"].(string); !ok {
		t.Errorf("timestamp should be ISO8601 text, got %v", entries[0]["ts"])
	}
}

func TestInitWithFileDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := InitWithFile(true, FileOptions{Path: path}); err != nil {
		t.Fatal(err)
	}
	defer Sync()

	Debugf("step %d", 7)

	entries := readLogLines(t, path)
	if len(entries) != 1 || entries[0]["msg"] != "step 7" || entries[0]["level"] != "debug" {
		t.Errorf("entries = %v, expected one debug entry", entries)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := InitWithFile(false, FileOptions{}); err != nil {
		t.Fatal(err)
	}
	if GetSugaredLogger() == nil || GetZapLogger() == nil {
		t.Fatal("logger not initialized")
	}
}
