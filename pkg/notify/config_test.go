package notify

import (
	"os"
	"path/filepath"
	"testing"
)

func writeNotifiersFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "notifiers.yaml")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write notifiers file: %v", err)
	}
	return file
}

func TestLoadRegistryYAML(t *testing.T) {
	file := writeNotifiersFile(t, `
notifiers:
  - id: hook
    type: http
    http:
      url: https://hooks.example/failures
  - id: queue
    type: sqs
    enabled: false
    sqs:
      uri: https://sqs.eu-west-1.amazonaws.com/1/failures
      region: eu-west-1
`)

	reg, err := LoadRegistry(file)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	if got := len(reg.All()); got != 2 {
		t.Fatalf("expected 2 notifiers, got %d", got)
	}
	if got := len(reg.Enabled()); got != 1 {
		t.Fatalf("expected 1 enabled notifier, got %d", got)
	}

	hook, ok := reg.ByID("hook")
	if !ok {
		t.Fatalf("hook notifier missing")
	}
	if hook.HTTP.Method != "POST" {
		t.Fatalf("http method should default to POST, got %q", hook.HTTP.Method)
	}
	if hook.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("http timeout should default, got %d", hook.HTTP.TimeoutSeconds)
	}
}

func TestLoadRegistryValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing type", "notifiers:\n  - id: x\n"},
		{"sqs without region", "notifiers:\n  - id: x\n    type: sqs\n    sqs:\n      uri: https://q\n"},
		{"sns without topic", "notifiers:\n  - id: x\n    type: sns\n    sns:\n      region: eu-west-1\n"},
		{"pubsub without project", "notifiers:\n  - id: x\n    type: gcp_pubsub\n    gcp_pubsub:\n      topic: t\n"},
		{"duplicate ids", "notifiers:\n  - id: x\n    type: http\n    http:\n      url: https://a\n  - id: x\n    type: http\n    http:\n      url: https://b\n"},
	}

	for _, tc := range cases {
		file := writeNotifiersFile(t, tc.content)
		if _, err := LoadRegistry(file); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestDefaultRegistryKnowsAllTypes(t *testing.T) {
	reg := DefaultRegistry()
	for _, typ := range []string{TypeHTTP, TypeSQS, TypeSNS, TypePubSub} {
		// Builders must be registered; they fail later on their own config checks.
		if _, err := reg.NotifierFor(nil, NotifierConfig{ID: "x", Type: typ}, nil); err == nil {
			t.Fatalf("type %s: expected config error from builder", typ)
		}
	}

	if _, err := reg.NotifierFor(nil, NotifierConfig{ID: "x", Type: "carrier-pigeon"}, nil); err == nil {
		t.Fatalf("unknown type should not resolve")
	}
}
