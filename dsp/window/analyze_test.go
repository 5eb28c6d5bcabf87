package window

import (
	"math"
	"testing"
)

func TestAnalyzeAgainstMetadata(t *testing.T) {
	tests := []struct {
		typ          Type
		sidelobeTol  float64
		wantBW3dB    float64
		wantNullBins float64
	}{
		{typ: TypeRectangular, sidelobeTol: 0.2, wantBW3dB: 0.89, wantNullBins: 1},
		{typ: TypeHann, sidelobeTol: 0.2, wantBW3dB: 1.44, wantNullBins: 2},
		{typ: TypeHamming, sidelobeTol: 0.5, wantBW3dB: 1.30, wantNullBins: 2},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			m := Info(tt.typ)
			a := Analyze(Generate(tt.typ, 1024))

			if math.Abs(a.CoherentGain-m.CoherentGain) > 0.01 {
				t.Fatalf("coherent gain=%v, want ~%v", a.CoherentGain, m.CoherentGain)
			}
			if math.Abs(a.ENBW-m.ENBW) > 0.01 {
				t.Fatalf("ENBW=%v, want ~%v", a.ENBW, m.ENBW)
			}
			if math.Abs(a.HighestSidelobedB-m.HighestSidelobe) > tt.sidelobeTol {
				t.Fatalf("sidelobe=%v dB, want ~%v", a.HighestSidelobedB, m.HighestSidelobe)
			}
			if math.Abs(a.Bandwidth3dB-tt.wantBW3dB) > 0.02 {
				t.Fatalf("3 dB bandwidth=%v, want ~%v", a.Bandwidth3dB, tt.wantBW3dB)
			}
			if math.Abs(a.FirstNullBins-tt.wantNullBins) > 0.05 {
				t.Fatalf("first null=%v bins, want ~%v", a.FirstNullBins, tt.wantNullBins)
			}
			if a.ScallopLossdB >= 0 {
				t.Fatalf("scallop loss=%v dB, want negative", a.ScallopLossdB)
			}
		})
	}
}

func TestAnalyzeDegenerate(t *testing.T) {
	if (Analyze(nil) != Analysis{}) {
		t.Fatal("expected zero analysis for empty coefficients")
	}
	if (Analyze([]float64{0, 0}) != Analysis{}) {
		t.Fatal("expected zero analysis for zero DC response")
	}
}
