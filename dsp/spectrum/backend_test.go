package spectrum

import (
	"testing"

	"github.com/bblackyyyy/FFT-proj/internal/testutil"
)

func TestBackendsAgree(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 1024} {
		noise := testutil.DeterministicNoise(42, 2, n)
		in := ZeroPad(noise)
		want := testutil.NaiveDFT(in)

		for _, b := range Backends() {
			t.Run(b.String(), func(t *testing.T) {
				got, err := Transform(in, b)
				if err != nil {
					t.Fatalf("n=%d: Transform error = %v", n, err)
				}
				testutil.RequireComplexNearlyEqual(t, got, want, 1e-8*float64(n))
			})
		}
	}
}

func TestTransformLeavesInputIntact(t *testing.T) {
	in := ZeroPad(testutil.DeterministicSine(3, 32, 1, 32))
	orig := append([]complex128(nil), in...)

	for _, b := range Backends() {
		if _, err := Transform(in, b); err != nil {
			t.Fatalf("%v: %v", b, err)
		}
		testutil.RequireComplexNearlyEqual(t, in, orig, 0)
	}
}

func TestTransformErrors(t *testing.T) {
	if _, err := Transform(make([]complex128, 6), BackendGonum); err == nil {
		t.Fatal("expected power-of-two error")
	}
	if _, err := Transform(make([]complex128, 4), Backend(99)); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestParseBackend(t *testing.T) {
	for _, b := range Backends() {
		got, err := ParseBackend(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBackend(%q) = %v, %v", b.String(), got, err)
		}
	}

	if got, err := ParseBackend(" GONUM "); err != nil || got != BackendGonum {
		t.Fatalf("ParseBackend(GONUM) = %v, %v", got, err)
	}
	if got, err := ParseBackend(""); err != nil || got != BackendRecursive {
		t.Fatalf("ParseBackend(\"\") = %v, %v", got, err)
	}
	if _, err := ParseBackend("fftw"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if Backend(7).String() != "Backend(7)" {
		t.Fatalf("unexpected String(): %q", Backend(7).String())
	}
}
