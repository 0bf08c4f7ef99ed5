package interrupt

import "testing"

func TestPollClearsTheFlag(t *testing.T) {
	pending.Store(false)

	if Poll() {
		t.Fatalf("expected no pending interrupt")
	}

	pending.Store(true)
	if !Poll() {
		t.Fatalf("expected the pending interrupt to be reported")
	}
	if Poll() {
		t.Fatalf("expected the flag cleared after one poll")
	}
}
