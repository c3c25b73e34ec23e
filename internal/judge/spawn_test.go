package judge

import (
	"strings"
	"testing"
)

func TestLimitedBuffer_UnderLimit(t *testing.T) {
	var lb limitedBuffer
	lb.limit = 16

	n, err := lb.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if lb.String() != "hello" || lb.truncated {
		t.Errorf("unexpected state: %q truncated=%v", lb.String(), lb.truncated)
	}
}

func TestLimitedBuffer_TruncatesAtLimit(t *testing.T) {
	var lb limitedBuffer
	lb.limit = 8

	n, err := lb.Write([]byte("0123456789"))
	if err != nil || n != 10 {
		t.Fatalf("write should claim full consumption: n=%d err=%v", n, err)
	}
	if lb.String() != "01234567" {
		t.Errorf("expected 8 bytes kept, got %q", lb.String())
	}
	if !lb.truncated {
		t.Error("expected truncated flag")
	}

	// Further writes are discarded but still report success.
	n, err = lb.Write([]byte("more"))
	if err != nil || n != 4 {
		t.Errorf("discard write: n=%d err=%v", n, err)
	}
	if lb.String() != "01234567" {
		t.Errorf("buffer grew after truncation: %q", lb.String())
	}
}

func TestTruncateOutput(t *testing.T) {
	if got := truncateOutput("abc", false); got != "abc" {
		t.Errorf("untruncated output modified: %q", got)
	}
	got := truncateOutput("abc", true)
	if !strings.HasPrefix(got, "abc") || !strings.Contains(got, "truncated") {
		t.Errorf("missing truncation notice: %q", got)
	}
}
