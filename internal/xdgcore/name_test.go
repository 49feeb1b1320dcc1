//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"testing"
	"time"

	"github.com/babarot/trashcan/internal/status"
)

func TestAllocateNameDerivedStem(t *testing.T) {
	dirs := dirSet{infoDir: "/trash/info", filesDir: "/trash/files"}
	when := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)

	cand, code := allocateName("notes.txt", dirs, when, 0, false)
	if code != status.Ok {
		t.Fatalf("unexpected failure code %v", code)
	}
	want := "notes.txt202405011234560"
	if cand.stem != want {
		t.Errorf("got stem %q, want %q", cand.stem, want)
	}
}

func TestAllocateNameCounterIncrementsWithinSameSecond(t *testing.T) {
	dirs := dirSet{infoDir: "/trash/info", filesDir: "/trash/files"}
	when := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)

	first, _ := allocateName("a.txt", dirs, when, 0, false)
	second, _ := allocateName("a.txt", dirs, when, 1, false)

	if first.stem == second.stem {
		t.Errorf("expected distinct stems for distinct counters, got %q twice", first.stem)
	}
	if first.stem[len(first.stem)-1] != '0' || second.stem[len(second.stem)-1] != '1' {
		t.Errorf("expected counters to append as lowercase hex suffixes, got %q then %q", first.stem, second.stem)
	}
}

func TestAllocateNameRandomFallbackOnSmallNameMax(t *testing.T) {
	SetNameMax(14)
	defer SetNameMax(0)

	dirs := dirSet{infoDir: "/trash/info", filesDir: "/trash/files"}
	when := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)

	cand, code := allocateName("short", dirs, when, 0, false)
	if code != status.Ok {
		t.Fatalf("unexpected failure code %v", code)
	}
	// NAME_MAX(14) - len(".trashinfo")(10) = 4, already even.
	if len(cand.stem) != 4 {
		t.Errorf("got stem length %d (%q), want 4", len(cand.stem), cand.stem)
	}
}

func TestAllocateNameRandomStemRoundsDownWhenOdd(t *testing.T) {
	SetNameMax(15) // 15 - 10 = 5, odd -> rounds down to 4
	defer SetNameMax(0)

	dirs := dirSet{infoDir: "/trash/info", filesDir: "/trash/files"}
	when := time.Now()

	cand, code := allocateName("a-long-enough-basename-to-force-random", dirs, when, 0, false)
	if code != status.Ok {
		t.Fatalf("unexpected failure code %v", code)
	}
	if len(cand.stem)%2 != 0 {
		t.Errorf("random stem length must be even, got %d", len(cand.stem))
	}
	if len(cand.stem) != 4 {
		t.Errorf("got stem length %d, want 4 (rounded down from 5)", len(cand.stem))
	}
}

func TestAllocateNameForceRandom(t *testing.T) {
	dirs := dirSet{infoDir: "/trash/info", filesDir: "/trash/files"}
	cand, code := allocateName("a.txt", dirs, time.Now(), 0, true)
	if code != status.Ok {
		t.Fatalf("unexpected failure code %v", code)
	}
	if cand.stem == "a.txt"+time.Now().Format("20060102150405")+"0" {
		t.Errorf("force_random must bypass the derived-name path")
	}
}
