package main

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSineWaveDefaults(t *testing.T) {
	x, y, err := sineWave(100, 0, 2*math.Pi)
	if err != nil {
		t.Fatalf("sineWave error: %v", err)
	}
	if len(x) != 100 || len(y) != 100 {
		t.Fatalf("expected 100 points, got %d/%d", len(x), len(y))
	}
	if x[0] != 0 || math.Abs(x[99]-2*math.Pi) > 1e-12 {
		t.Fatalf("expected endpoints 0 and 2pi, got %v %v", x[0], x[99])
	}
	step := 2 * math.Pi / 99
	if diff := math.Abs(x[1] - step); diff > 1e-12 {
		t.Fatalf("unexpected step: %v", x[1])
	}
	for i := range x {
		if y[i] != math.Sin(x[i]) {
			t.Fatalf("y[%d]=%v is not sin(%v)", i, y[i], x[i])
		}
	}
}

func TestSineWaveInvalid(t *testing.T) {
	cases := []struct {
		points      int
		start, stop float64
	}{
		{1, 0, 1},
		{0, 0, 1},
		{10, 1, 1},
		{10, 2, 1},
		{10, math.NaN(), 1},
		{10, 0, math.Inf(1)},
	}
	for _, c := range cases {
		if _, _, err := sineWave(c.points, c.start, c.stop); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %+v, got %v", c, err)
		}
	}
}

func TestParseSample(t *testing.T) {
	got, err := parseSample([]string{"1", "2.5,3", " -4e1 "})
	if err != nil {
		t.Fatalf("parseSample error: %v", err)
	}
	want := Sample{1, 2.5, 3, -40}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseSampleInvalid(t *testing.T) {
	_, err := parseSample([]string{"1", "two", "3"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), `"two"`) || !strings.Contains(err.Error(), "#2") {
		t.Fatalf("error should name the offending value: %v", err)
	}
}

func TestParseSampleRejectsNonFinite(t *testing.T) {
	for _, tok := range []string{"NaN", "inf", "-Inf", "1e400"} {
		if _, err := parseSample([]string{tok}); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %q, got %v", tok, err)
		}
	}
}

func TestParseSampleEmpty(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {" , ,"}} {
		if _, err := parseSample(args); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %q, got %v", args, err)
		}
	}
}
