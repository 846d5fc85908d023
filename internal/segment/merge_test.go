package segment

import "testing"

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil, 2000); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestMergeSingleInterval(t *testing.T) {
	got := Merge([]Interval{{StartMS: 100, EndMS: 900}}, 2000)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0].StartMS != 100 || got[0].EndMS != 900 {
		t.Fatalf("unexpected segment %+v", got[0])
	}
}

func TestMergeGapBelowThreshold(t *testing.T) {
	intervals := []Interval{{0, 1000}, {1500, 2000}}
	got := Merge(intervals, 2000)
	if len(got) != 1 {
		t.Fatalf("expected 1 merged segment, got %d: %v", len(got), got)
	}
	if got[0].StartMS != 0 || got[0].EndMS != 2000 {
		t.Fatalf("expected (0, 2000), got %+v", got[0])
	}
}

func TestMergeGapAboveThreshold(t *testing.T) {
	intervals := []Interval{{0, 1000}, {1500, 2000}}
	got := Merge(intervals, 400)
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(got), got)
	}
	if got[0] != (Continuous{0, 1000}) || got[1] != (Continuous{1500, 2000}) {
		t.Fatalf("unexpected segments %v", got)
	}
}

func TestMergeGapEqualToThresholdSplits(t *testing.T) {
	// The comparison is strict: a gap exactly equal to the threshold
	// separates two segments.
	intervals := []Interval{{0, 1000}, {1300, 1400}}
	got := Merge(intervals, 300)
	if len(got) != 2 {
		t.Fatalf("expected split at exact threshold, got %v", got)
	}
}

func TestMergeOverlappingIntervals(t *testing.T) {
	intervals := []Interval{{0, 1000}, {800, 1600}, {1600, 2400}}
	got := Merge(intervals, 0)
	if len(got) != 1 {
		t.Fatalf("expected overlapping intervals to collapse, got %v", got)
	}
	if got[0] != (Continuous{0, 2400}) {
		t.Fatalf("expected (0, 2400), got %+v", got[0])
	}
}

func TestMergeSegmentsNeverOverlapAndCoverInput(t *testing.T) {
	cases := []struct {
		name      string
		intervals []Interval
		threshold float64
	}{
		{"sparse", []Interval{{0, 500}, {3000, 3500}, {9000, 9100}}, 2000},
		{"dense", []Interval{{0, 500}, {600, 1200}, {1300, 2000}, {2100, 2500}}, 500},
		{"mixed", []Interval{{100, 200}, {250, 400}, {5000, 5200}, {5300, 5400}}, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments := Merge(tc.intervals, tc.threshold)
			for i := 1; i < len(segments); i++ {
				if segments[i].StartMS <= segments[i-1].EndMS {
					t.Errorf("segments %d and %d overlap: %v", i-1, i, segments)
				}
				if segments[i].StartMS <= segments[i-1].StartMS {
					t.Errorf("segments not strictly ordered: %v", segments)
				}
			}
			for _, iv := range tc.intervals {
				covered := false
				for _, seg := range segments {
					if iv.StartMS >= seg.StartMS && iv.EndMS <= seg.EndMS {
						covered = true
						break
					}
				}
				if !covered {
					t.Errorf("interval %+v not covered by any segment: %v", iv, segments)
				}
			}
		})
	}
}

func TestTotalDurationMS(t *testing.T) {
	segments := []Continuous{{0, 1000}, {5000, 8000}}
	if got := TotalDurationMS(segments); got != 4000 {
		t.Fatalf("expected 4000, got %v", got)
	}
}
