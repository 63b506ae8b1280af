package optional

import (
	"strconv"
	"testing"
)

func TestOf_IsPresent(t *testing.T) {
	t.Parallel()
	o := Of(3)

	if !o.IsPresent() || o.IsEmpty() {
		t.Fatalf("expected present optional, got: present=%v empty=%v", o.IsPresent(), o.IsEmpty())
	}
	if v, ok := o.Get(); !ok || v != 3 {
		t.Fatalf("expected value 3, got: %v (present=%v)", v, ok)
	}
}

func TestEmpty_IsEmpty(t *testing.T) {
	t.Parallel()
	o := Empty[int]()

	if o.IsPresent() || !o.IsEmpty() {
		t.Fatalf("expected empty optional, got: present=%v empty=%v", o.IsPresent(), o.IsEmpty())
	}
	if _, ok := o.Get(); ok {
		t.Fatalf("expected Get to report absence")
	}
}

func TestZeroValue_IsEmpty(t *testing.T) {
	t.Parallel()
	var o Optional[string]

	if !o.IsEmpty() {
		t.Fatalf("expected zero value to be empty")
	}
}

func TestOfPtr(t *testing.T) {
	t.Parallel()
	v := 5
	if o := OfPtr(&v); !o.IsPresent() || o.MustGet() != 5 {
		t.Fatalf("expected present optional with 5, got: %v", o)
	}
	if o := OfPtr[int](nil); !o.IsEmpty() {
		t.Fatalf("expected empty optional from nil pointer")
	}
}

func TestOfNilable(t *testing.T) {
	t.Parallel()
	var p *int
	if o := OfNilable(p); !o.IsEmpty() {
		t.Fatalf("expected empty optional from typed nil pointer")
	}

	var m map[string]int
	if o := OfNilable(m); !o.IsEmpty() {
		t.Fatalf("expected empty optional from nil map")
	}

	if o := OfNilable("text"); !o.IsPresent() {
		t.Fatalf("expected present optional from non-nilable value")
	}
}

func TestMustGet_PanicsWhenEmpty(t *testing.T) {
	t.Parallel()
	defer func() {
		if p := recover(); p != "optional: no value present" {
			t.Fatalf("expected panic on empty MustGet, got: %v", p)
		}
	}()
	Empty[int]().MustGet()
}

func TestOrElseFamily(t *testing.T) {
	t.Parallel()
	if got := Of(1).OrElse(9); got != 1 {
		t.Fatalf("expected 1, got: %d", got)
	}
	if got := Empty[int]().OrElse(9); got != 9 {
		t.Fatalf("expected fallback 9, got: %d", got)
	}

	calls := 0
	got := Of(2).OrElseGet(func() int {
		calls++
		return 0
	})
	if got != 2 || calls != 0 {
		t.Fatalf("expected lazy fallback untouched, got: %d (calls=%d)", got, calls)
	}
	if got := Empty[int]().OrElseGet(func() int { return 4 }); got != 4 {
		t.Fatalf("expected lazy fallback 4, got: %d", got)
	}
}

func TestOrElseThrow(t *testing.T) {
	t.Parallel()
	if got := Of("v").OrElseThrow("missing"); got != "v" {
		t.Fatalf("expected 'v', got: %q", got)
	}

	defer func() {
		if p := recover(); p != "missing" {
			t.Fatalf("expected panic payload 'missing', got: %v", p)
		}
	}()
	Empty[string]().OrElseThrow("missing")
}

func TestIfPresentAndIfNotPresent(t *testing.T) {
	t.Parallel()
	presentCalls, absentCalls := 0, 0

	Of(1).
		IfPresent(func(int) { presentCalls++ }).
		IfNotPresent(func() { absentCalls++ })
	if presentCalls != 1 || absentCalls != 0 {
		t.Fatalf("expected only present callback, got: present=%d absent=%d", presentCalls, absentCalls)
	}

	presentCalls, absentCalls = 0, 0
	Empty[int]().
		IfPresent(func(int) { presentCalls++ }).
		IfNotPresent(func() { absentCalls++ })
	if presentCalls != 0 || absentCalls != 1 {
		t.Fatalf("expected only absent callback, got: present=%d absent=%d", presentCalls, absentCalls)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	if o := Of(10).Filter(func(v int) bool { return v > 5 }); !o.IsPresent() {
		t.Fatalf("expected value to survive filter")
	}
	if o := Of(2).Filter(func(v int) bool { return v > 5 }); !o.IsEmpty() {
		t.Fatalf("expected value to be filtered out")
	}
}

func TestMapAndAndThen(t *testing.T) {
	t.Parallel()
	o := Map(Of(7), strconv.Itoa)
	if v, ok := o.Get(); !ok || v != "7" {
		t.Fatalf("expected mapped value \"7\", got: %q", v)
	}

	if o := Map(Empty[int](), strconv.Itoa); !o.IsEmpty() {
		t.Fatalf("expected map on empty to stay empty")
	}

	out := AndThen(Of("12"), func(s string) Optional[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Empty[int]()
		}
		return Of(n)
	})
	if v, ok := out.Get(); !ok || v != 12 {
		t.Fatalf("expected chained value 12, got: %v", v)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if got := Of(1).String(); got != "Optional(1)" {
		t.Fatalf("expected 'Optional(1)', got: %q", got)
	}
	if got := Empty[int]().String(); got != "Optional.empty" {
		t.Fatalf("expected 'Optional.empty', got: %q", got)
	}
}
