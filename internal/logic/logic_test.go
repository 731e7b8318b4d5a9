package logic

import "testing"

func TestNotInvolutive(t *testing.T) {
	for _, v := range []Value{Zero, One, X, D, Dbar} {
		if got := Not(Not(v)); got != v {
			t.Errorf("Not(Not(%v)) = %v, want %v", v, got, v)
		}
	}
}

func TestAndCommutative(t *testing.T) {
	vals := []Value{Zero, One, X, D, Dbar}
	for _, a := range vals {
		for _, b := range vals {
			if And(a, b) != And(b, a) {
				t.Errorf("And(%v,%v)=%v != And(%v,%v)=%v", a, b, And(a, b), b, a, And(b, a))
			}
		}
	}
}

func TestOrCommutative(t *testing.T) {
	vals := []Value{Zero, One, X, D, Dbar}
	for _, a := range vals {
		for _, b := range vals {
			if Or(a, b) != Or(b, a) {
				t.Errorf("Or(%v,%v)=%v != Or(%v,%v)=%v", a, b, Or(a, b), b, a, Or(b, a))
			}
		}
	}
}

func TestAndZeroDominates(t *testing.T) {
	for _, v := range []Value{Zero, One, X, D, Dbar} {
		if got := And(Zero, v); got != Zero {
			t.Errorf("And(0,%v) = %v, want 0", v, got)
		}
	}
}

func TestOrOneDominates(t *testing.T) {
	for _, v := range []Value{Zero, One, X, D, Dbar} {
		if got := Or(One, v); got != One {
			t.Errorf("Or(1,%v) = %v, want 1", v, got)
		}
	}
}

func TestAndTableSpec(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{One, One, One},
		{One, X, X},
		{One, D, D},
		{One, Dbar, Dbar},
		{D, D, D},
		{D, Dbar, Zero},
		{Dbar, Dbar, Dbar},
		{D, X, X},
	}
	for _, c := range cases {
		if got := And(c.a, c.b); got != c.want {
			t.Errorf("And(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestOrTableSpec(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, Zero, Zero},
		{Zero, X, X},
		{Zero, D, D},
		{Zero, Dbar, Dbar},
		{D, D, D},
		{D, Dbar, One},
		{Dbar, Dbar, Dbar},
	}
	for _, c := range cases {
		if got := Or(c.a, c.b); got != c.want {
			t.Errorf("Or(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestParseAndChar(t *testing.T) {
	for c, want := range map[byte]Value{'0': Zero, '1': One, 'x': X, 'X': X} {
		got, err := Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", c, got, want)
		}
	}
	if _, err := Parse('D'); err == nil {
		t.Errorf("Parse('D') should error")
	}
}

func TestIsFaulty(t *testing.T) {
	if !D.IsFaulty() || !Dbar.IsFaulty() {
		t.Errorf("D and Dbar should be faulty")
	}
	if Zero.IsFaulty() || One.IsFaulty() || X.IsFaulty() {
		t.Errorf("0, 1, X should not be faulty")
	}
}
