package wheel

import (
	"math"
	"math/rand"
	"testing"
)

const (
	testExtent = 40
	testCenter = 44
)

func recorder(t *testing.T, modulus int, got *[]int) Option {
	return OnChange(func(v int) {
		if v < 0 || v >= modulus {
			t.Fatalf("emitted out of range value %d for modulus %d", v, modulus)
		}
		*got = append(*got, v)
	})
}

func TestNewNormalizesInitial(t *testing.T) {
	cases := []struct {
		modulus, initial, want int
	}{
		{24, 25, 1},
		{24, -1, 23},
		{60, 59, 59},
		{60, -121, 59},
		{60, 120, 0},
	}
	for _, tc := range cases {
		s := New(tc.modulus, tc.initial, WithItemExtent(testExtent), WithCenterOffset(testCenter))
		if s.Value() != tc.want {
			t.Fatalf("New(%d, %d).Value() = %d, want %d", tc.modulus, tc.initial, s.Value(), tc.want)
		}
		if got := Mod(s.Index(), tc.modulus); got != tc.want {
			t.Fatalf("initial position does not center %d, index maps to %d", tc.want, got)
		}
		mid := s.Index() / tc.modulus
		if mid != DefaultCopies/2 {
			t.Fatalf("expected to start in copy %d, got %d", DefaultCopies/2, mid)
		}
	}
}

func TestWithCopiesForcesOddAtLeastThree(t *testing.T) {
	if s := New(24, 0, WithCopies(2)); s.Len() != 24*3 {
		t.Fatalf("expected 3 copies, got %d items", s.Len())
	}
	if s := New(24, 0, WithCopies(6)); s.Len() != 24*7 {
		t.Fatalf("expected 7 copies, got %d items", s.Len())
	}
}

func TestWrapEmitsSingleTransition(t *testing.T) {
	var got []int
	s := New(24, 23, WithItemExtent(testExtent), WithCenterOffset(testCenter), recorder(t, 24, &got))
	if !s.Scroll(testExtent) {
		t.Fatalf("expected value change")
	}
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected a single 0 emission, got %v", got)
	}

	got = nil
	m := New(60, 0, WithItemExtent(testExtent), WithCenterOffset(testCenter), recorder(t, 60, &got))
	m.Scroll(-testExtent)
	if len(got) != 1 || got[0] != 59 {
		t.Fatalf("expected a single 59 emission, got %v", got)
	}
}

func TestJitterDoesNotNotify(t *testing.T) {
	var got []int
	s := New(60, 30, WithItemExtent(testExtent), WithCenterOffset(testCenter), recorder(t, 60, &got))
	s.Scroll(0.3 * testExtent)
	s.Scroll(-0.5 * testExtent)
	s.Scroll(0.1 * testExtent)
	if len(got) != 0 {
		t.Fatalf("expected no emissions for sub-item movement, got %v", got)
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	for _, modulus := range []int{24, 60} {
		for _, dir := range []float64{1, -1} {
			var got []int
			s := New(modulus, 5, WithItemExtent(testExtent), WithCenterOffset(testCenter), recorder(t, modulus, &got))
			steps := modulus * 4
			for i := 0; i < steps; i++ {
				s.Scroll(dir * testExtent / 4)
			}
			if s.Value() != 5 {
				t.Fatalf("modulus %d dir %v: expected 5 after a full cycle, got %d", modulus, dir, s.Value())
			}
			if len(got) != modulus {
				t.Fatalf("modulus %d dir %v: expected %d emissions, got %d", modulus, dir, modulus, len(got))
			}
			for i := 1; i < len(got); i++ {
				if Mod(got[i]-got[i-1], modulus) != Mod(int(dir), modulus) {
					t.Fatalf("modulus %d dir %v: skipped a value between %d and %d", modulus, dir, got[i-1], got[i])
				}
			}
		}
	}
}

func TestRandomScrollKeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, modulus := range []int{24, 60} {
		s := New(modulus, r.Intn(modulus), WithItemExtent(testExtent), WithCenterOffset(testCenter))
		cycle := s.CycleExtent()
		for i := 0; i < 2000; i++ {
			delta := (r.Float64()*2 - 1) * cycle * 1.5
			s.Scroll(delta)
			if v := s.Value(); v < 0 || v >= modulus {
				t.Fatalf("value %d out of range", v)
			}
			want := Mod(int(math.Round((s.Position()+testCenter)/testExtent)), modulus)
			if s.Value() != want {
				t.Fatalf("value %d does not match position %v (want %d)", s.Value(), s.Position(), want)
			}
			if s.Position() < cycle || s.Position() > 4*cycle {
				t.Fatalf("position %v escaped the inner copies", s.Position())
			}
		}
	}
}

func TestTeleportIsInvisible(t *testing.T) {
	s := New(24, 7, WithItemExtent(testExtent), WithCenterOffset(testCenter))
	cycle := s.CycleExtent()

	// Park just inside copy 1, then step into copy 0.
	s.SetPosition(cycle + 2*testExtent)
	before := s.Position()
	raw := before - 5*testExtent
	wantValue := Mod(int(math.Round((raw+testCenter)/testExtent)), 24)

	s.Scroll(-5 * testExtent)
	if s.Value() != wantValue {
		t.Fatalf("teleport changed the value: want %d, got %d", wantValue, s.Value())
	}
	shift := s.Position() - raw
	if shift == 0 {
		t.Fatalf("expected a teleport when entering the first copy")
	}
	if cycles := shift / cycle; cycles != math.Trunc(cycles) {
		t.Fatalf("teleport moved by %v, not a whole number of cycles", shift)
	}

	// And the other end.
	s.SetPosition(4*cycle - testExtent)
	raw = s.Position() + 3*testExtent
	wantValue = Mod(int(math.Round((raw+testCenter)/testExtent)), 24)
	s.Scroll(3 * testExtent)
	if s.Value() != wantValue {
		t.Fatalf("teleport changed the value: want %d, got %d", wantValue, s.Value())
	}
	if s.Position() > 4*cycle {
		t.Fatalf("position %v not corrected", s.Position())
	}
}

func TestSelectPrefersNearestOccurrence(t *testing.T) {
	s := New(24, 22, WithItemExtent(testExtent), WithCenterOffset(testCenter))
	cur := s.Index()

	target := s.Select(1)
	if idx := int(math.Round((target + testCenter) / testExtent)); idx != cur+3 {
		t.Fatalf("expected forward wrap to index %d, got %d", cur+3, idx)
	}
	if s.Value() != 22 {
		t.Fatalf("Select must not move the wheel by itself")
	}

	// 10 is twelve rows away in both directions; stay in the current copy.
	target = s.Select(10)
	if idx := int(math.Round((target + testCenter) / testExtent)); idx != cur-12 {
		t.Fatalf("expected tie to keep the current copy at %d, got %d", cur-12, idx)
	}
}

func TestSelectAnimatesThroughWrap(t *testing.T) {
	var got []int
	s := New(24, 22, WithItemExtent(testExtent), WithCenterOffset(testCenter), recorder(t, 24, &got))
	s.Select(25)
	for i := 0; i < 200 && s.Animating(); i++ {
		s.Step(0.35)
	}
	if s.Animating() {
		t.Fatalf("animation did not settle")
	}
	if s.Value() != 1 {
		t.Fatalf("expected 1, got %d", s.Value())
	}
	want := []int{23, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("expected emissions %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected emissions %v, got %v", want, got)
		}
	}
}

func TestUserScrollCancelsAnimation(t *testing.T) {
	s := New(60, 0)
	s.Select(30)
	s.Scroll(1)
	if s.Animating() {
		t.Fatalf("expected scroll to cancel the animation")
	}
	if s.Value() != 1 {
		t.Fatalf("expected 1, got %d", s.Value())
	}
}

func TestSnapAlignsToNearestItem(t *testing.T) {
	s := New(60, 10, WithItemExtent(testExtent), WithCenterOffset(testCenter))
	s.Scroll(0.4 * testExtent)
	s.Snap()
	s.Step(1)
	if s.Animating() {
		t.Fatalf("expected a full step to settle")
	}
	if got := math.Mod(s.Position()+testCenter, testExtent); got != 0 {
		t.Fatalf("expected aligned position, remainder %v", got)
	}
	if s.Value() != 10 {
		t.Fatalf("expected 10, got %d", s.Value())
	}
}

func TestJump(t *testing.T) {
	var got []int
	s := New(60, 58, recorder(t, 60, &got))
	if !s.Jump(2) {
		t.Fatalf("expected Jump to change the value")
	}
	if s.Value() != 2 || s.Animating() {
		t.Fatalf("unexpected state after jump: value %d animating %v", s.Value(), s.Animating())
	}
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected a single emission of 2, got %v", got)
	}
}

func TestWindow(t *testing.T) {
	s := New(24, 0)
	items := s.Window(2)
	want := []int{22, 23, 0, 1, 2}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, it := range items {
		if it.Value != want[i] || it.Distance != i-2 {
			t.Fatalf("item %d = %+v, want value %d distance %d", i, it, want[i], i-2)
		}
	}
}
