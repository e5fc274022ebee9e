package session

import "testing"

func TestParseSourceSystem(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceSystem
		wantErr bool
	}{
		{"eon", SourceEON, false},
		{"sdp", SourceSDP, false},
		{"orion", SourceORION, false},
		{"EON", "", true},
		{"", "", true},
		{"mainframe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceSystem(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSourceSystemNextCycles(t *testing.T) {
	got := SourceEON
	seen := map[SourceSystem]bool{got: true}
	for i := 0; i < len(SourceSystems)-1; i++ {
		got = got.Next()
		if seen[got] {
			t.Fatalf("cycle revisited %s early", got)
		}
		seen[got] = true
	}
	if got.Next() != SourceEON {
		t.Errorf("expected cycle to wrap to eon, got %s", got.Next())
	}
}

func TestParseTimeRange(t *testing.T) {
	for _, r := range TimeRanges {
		got, err := ParseTimeRange(string(r))
		if err != nil {
			t.Errorf("expected %s to parse, got %v", r, err)
		}
		if got != r {
			t.Errorf("expected %s, got %s", r, got)
		}
	}

	if _, err := ParseTimeRange("6m"); err == nil {
		t.Error("expected error for unknown range")
	}
}

func TestForecastPointDay(t *testing.T) {
	tests := []struct {
		name string
		ds   string
		want string
	}{
		{"rfc3339", "2026-09-15T00:00:00Z", "2026-09-15"},
		{"date prefix fallback", "2026-09-15 00:00:00", "2026-09-15"},
		{"bare date", "2026-09-15", "2026-09-15"},
		{"short value passes through", "tomorrow", "tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ForecastPoint{DS: tt.ds}
			if got := p.Day(); got != tt.want {
				t.Errorf("Day(%q) = %q, want %q", tt.ds, got, tt.want)
			}
		})
	}
}
