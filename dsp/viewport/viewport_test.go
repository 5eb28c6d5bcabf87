package viewport

import (
	"errors"
	"testing"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
)

func TestFull(t *testing.T) {
	v, err := Full(10)
	if err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	if v != (Viewport{Start: 0, Length: 10}) {
		t.Fatalf("Full(10) = %+v", v)
	}

	if _, err := Full(0); !errors.Is(err, core.ErrEmptyViewport) {
		t.Fatalf("Full(0) error = %v, want ErrEmptyViewport", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name                 string
		total, start, length int
		want                 Viewport
		wantErr              error
	}{
		{name: "fits", total: 10, start: 2, length: 5, want: Viewport{2, 5}},
		{name: "clamped", total: 10, start: 8, length: 5, want: Viewport{8, 2}},
		{name: "last sample", total: 10, start: 9, length: 100, want: Viewport{9, 1}},
		{name: "empty channel", total: 0, start: 0, length: 1, wantErr: core.ErrEmptyViewport},
		{name: "zero length", total: 10, start: 0, length: 0, wantErr: core.ErrEmptyViewport},
		{name: "start at end", total: 10, start: 10, length: 1, wantErr: core.ErrOutOfRange},
		{name: "negative start", total: 10, start: -1, length: 1, wantErr: core.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.total, tt.start, tt.length)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClampInvariant(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for start := 0; start < total; start++ {
			for length := 1; length <= total+3; length++ {
				v, err := New(total, start, length)
				if err != nil {
					t.Fatalf("New(%d,%d,%d) error = %v", total, start, length, err)
				}
				if v.Length < 1 || v.Length > total-start || v.Length > length {
					t.Fatalf("New(%d,%d,%d) length = %d", total, start, length, v.Length)
				}
				if !v.Fits(total) {
					t.Fatalf("New(%d,%d,%d) = %v does not fit", total, start, length, v)
				}
			}
		}
	}
}

func TestWithStartNeverRaisesLength(t *testing.T) {
	v, err := Full(10)
	if err != nil {
		t.Fatal(err)
	}

	v, err = v.WithStart(10, 8)
	if err != nil {
		t.Fatalf("WithStart(8) error = %v", err)
	}
	if v != (Viewport{8, 2}) {
		t.Fatalf("WithStart(8) = %+v, want {8 2}", v)
	}

	v, err = v.WithStart(10, 0)
	if err != nil {
		t.Fatalf("WithStart(0) error = %v", err)
	}
	if v != (Viewport{0, 2}) {
		t.Fatalf("WithStart(0) = %+v, want {0 2}", v)
	}

	if _, err := v.WithStart(10, 10); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("WithStart(10) error = %v, want ErrOutOfRange", err)
	}
}

func TestWithLength(t *testing.T) {
	v := Viewport{Start: 4, Length: 1}

	got, err := v.WithLength(10, 50)
	if err != nil {
		t.Fatalf("WithLength() error = %v", err)
	}
	if got != (Viewport{4, 6}) {
		t.Fatalf("WithLength(50) = %+v, want {4 6}", got)
	}
	if _, err := v.WithLength(10, 0); !errors.Is(err, core.ErrEmptyViewport) {
		t.Fatalf("WithLength(0) error = %v", err)
	}
}

func TestSlice(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 4, 5}
	seg := Viewport{Start: 2, Length: 3}.Slice(samples)
	if len(seg) != 3 || seg[0] != 2 || seg[2] != 4 {
		t.Fatalf("Slice() = %v", seg)
	}
	if cap(seg) != 3 {
		t.Fatalf("cap(Slice()) = %d, want 3", cap(seg))
	}
}

func TestMaxLength(t *testing.T) {
	if MaxLength(10, 3) != 7 || MaxLength(10, 10) != 0 || MaxLength(10, -1) != 0 {
		t.Fatal("unexpected MaxLength result")
	}
}

func TestString(t *testing.T) {
	if got := (Viewport{Start: 3, Length: 4}).String(); got != "[3, 7)" {
		t.Fatalf("String() = %q", got)
	}
}
