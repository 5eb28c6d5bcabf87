package channel

import (
	"errors"
	"strings"
	"testing"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/table"
	"github.com/bblackyyyy/FFT-proj/internal/testutil"
)

func mustParse(t *testing.T, raw string) *table.Matrix {
	t.Helper()
	m, err := table.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

func TestExtractDropsIndexColumn(t *testing.T) {
	m := mustParse(t, "0,1.0\n1,0.0\n2,-1.0\n3,0.0")

	chans, err := Extract(m)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(chans) != 1 {
		t.Fatalf("len(chans) = %d, want 1", len(chans))
	}
	testutil.RequireSliceNearlyEqual(t, chans[0], []float64{1, 0, -1, 0}, 0)
}

func TestExtractKeepsConstantFirstColumn(t *testing.T) {
	m := mustParse(t, "5,1\n5,2\n5,3")

	chans, err := Extract(m)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	testutil.RequireSliceNearlyEqual(t, chans[0], []float64{5, 5, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, chans[1], []float64{1, 2, 3}, 0)
}

func TestExtractProbeWindow(t *testing.T) {
	// Column 0 is constant over the first ten rows and only changes later.
	var b strings.Builder
	for i := 0; i < 12; i++ {
		first := "1"
		if i >= 10 {
			first = "2"
		}
		b.WriteString(first + ",0.5\n")
	}

	chans, err := Extract(mustParse(t, b.String()))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
}

func TestExtractSingleColumn(t *testing.T) {
	chans, err := Extract(mustParse(t, "1\n2\n3"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(chans) != 1 {
		t.Fatalf("len(chans) = %d, want 1", len(chans))
	}
	testutil.RequireSliceNearlyEqual(t, chans[0], []float64{1, 2, 3}, 0)
}

func TestExtractRoles(t *testing.T) {
	raw := "0,1,2\n1,3,4\n2,5,6"

	tests := []struct {
		name string
		role Role
		want int
	}{
		{name: "auto", role: RoleAuto, want: 2},
		{name: "index", role: RoleIndex, want: 2},
		{name: "data", role: RoleData, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chans, err := Extract(mustParse(t, raw), WithRole(tt.role))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(chans) != tt.want {
				t.Fatalf("len(chans) = %d, want %d", len(chans), tt.want)
			}
		})
	}

	chans, err := Extract(mustParse(t, "7,1\n7,2"), WithRole(RoleIndex))
	if err != nil {
		t.Fatalf("Extract(RoleIndex) error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, chans[0], []float64{1, 2}, 0)
}

func TestExtractUnsupportedChannelCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		opts []Option
	}{
		{name: "five columns with index", raw: "0,1,2,3,4\n1,1,2,3,4"},
		{name: "five columns constant", raw: "1,1,2,3,4\n1,1,2,3,4"},
		{name: "four data columns", raw: "1,2,3,4\n5,6,7,8", opts: []Option{WithRole(RoleData)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(mustParse(t, tt.raw), tt.opts...)
			if !errors.Is(err, core.ErrUnsupportedChannelCount) {
				t.Fatalf("Extract() error = %v, want ErrUnsupportedChannelCount", err)
			}
		})
	}

	chans, err := Extract(mustParse(t, "0,1,2,3\n1,4,5,6"))
	if err != nil {
		t.Fatalf("four columns with index: Extract() error = %v", err)
	}
	if len(chans) != core.MaxChannels {
		t.Fatalf("len(chans) = %d, want %d", len(chans), core.MaxChannels)
	}
}

func TestExtractNil(t *testing.T) {
	if _, err := Extract(nil); !errors.Is(err, core.ErrEmptyOrInvalidInput) {
		t.Fatalf("Extract(nil) error = %v", err)
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	m := mustParse(t, "1,2\n1,3")
	chans, err := Extract(m)
	if err != nil {
		t.Fatal(err)
	}
	chans[0][0] = 100
	if chans[1][0] != 2 || m.At(0, 0) != 1 {
		t.Fatal("channels alias each other or the matrix")
	}
}

func TestRoleString(t *testing.T) {
	if RoleAuto.String() != "auto" || RoleIndex.String() != "index" || RoleData.String() != "data" || Role(9).String() != "unknown" {
		t.Fatal("unexpected Role.String() output")
	}
}
