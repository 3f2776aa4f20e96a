package smite

import (
	"regexp"
	"testing"
	"time"
)

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(timestampLayout, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.UTC() }
}

func TestSignatureKnownVector(t *testing.T) {
	c, err := New("123", "abc", withClock(fixedClock("20250101000000")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.signature("getgods", c.nowTimestamp())
	if want := "f4d80fd7aaec1a8c01f8fe97062ddaab"; got != want {
		t.Fatalf("signature = %q, want %q", got, want)
	}
}

func TestSignatureShapeAndDeterminism(t *testing.T) {
	c, err := New("123", "abc", withClock(fixedClock("20250101000000")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)
	for _, method := range []string{"createsession", "testsession", "getgods", "getplayer"} {
		sig := c.signature(method, c.nowTimestamp())
		if !hex32.MatchString(sig) {
			t.Fatalf("signature for %s = %q, want 32 lowercase hex chars", method, sig)
		}
		if again := c.signature(method, c.nowTimestamp()); again != sig {
			t.Fatalf("signature for %s not deterministic: %q vs %q", method, sig, again)
		}
	}

	if c.signature("getgods", c.nowTimestamp()) == c.signature("getitems", c.nowTimestamp()) {
		t.Fatalf("signatures for different methods must differ")
	}
	if c.signature("getgods", "20250101000000") == c.signature("getgods", "20250101000001") {
		t.Fatalf("signatures for different timestamps must differ")
	}
}

func TestNowTimestampIsUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2025, 6, 1, 20, 30, 0, 0, loc)

	c, err := New("123", "abc", withClock(func() time.Time { return local }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := c.nowTimestamp(), "20250602003000"; got != want {
		t.Fatalf("nowTimestamp = %q, want UTC %q", got, want)
	}
}
