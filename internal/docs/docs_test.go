package docs

import (
	"strings"
	"testing"
)

func TestTopicsAreEmbedded(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatalf("expected embedded topics")
	}
	for _, want := range []string{"config", "format", "keys"} {
		found := false
		for _, got := range topics {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected topic %q in %v", want, topics)
		}
	}
}

func TestGetNormalizesTopicName(t *testing.T) {
	body, ok := Get("  Format ")
	if !ok {
		t.Fatalf("expected format topic to resolve")
	}
	if !strings.Contains(body, "TODO: ") {
		t.Fatalf("expected task file description, got %q", body)
	}

	if _, ok := Get("no-such-topic"); ok {
		t.Fatalf("expected unknown topic to report false")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty topic to report false")
	}
}
