package position

import (
	"testing"

	"github.com/nowtrain/yamanote-live/stations"
)

const yam = "JR-East.Yamanote."

func pair(from, to string) [2]string {
	return [2]string{yam + from, yam + to}
}

func TestAdjacentSegments(t *testing.T) {
	topo := stations.Yamanote()

	tests := []struct {
		name string
		from string
		to   string
		dir  stations.Direction
		want [][2]string
	}{
		{
			name: "outer normal",
			from: yam + "Shibuya", to: yam + "Harajuku", dir: stations.OuterLoop,
			want: [][2]string{pair("Shibuya", "Harajuku"), pair("Ebisu", "Shibuya"), pair("Harajuku", "Yoyogi")},
		},
		{
			name: "outer across the seam",
			from: yam + "Shinagawa", to: yam + "Osaki", dir: stations.OuterLoop,
			want: [][2]string{pair("Shinagawa", "Osaki"), pair("TakanawaGateway", "Shinagawa"), pair("Osaki", "Gotanda")},
		},
		{
			name: "inner normal",
			from: yam + "Harajuku", to: yam + "Shibuya", dir: stations.InnerLoop,
			want: [][2]string{pair("Harajuku", "Shibuya"), pair("Yoyogi", "Harajuku"), pair("Shibuya", "Ebisu")},
		},
		{
			name: "inner across the seam",
			from: yam + "Osaki", to: yam + "Shinagawa", dir: stations.InnerLoop,
			want: [][2]string{pair("Osaki", "Shinagawa"), pair("Gotanda", "Osaki"), pair("Shinagawa", "TakanawaGateway")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjacentSegments(topo, tt.from, tt.to, tt.dir)
			if len(got) != 3 {
				t.Fatalf("got %d candidates, want 3", len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("candidate %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAdjacentSegmentsUnknownStation(t *testing.T) {
	topo := stations.Yamanote()

	got := AdjacentSegments(topo, "Unknown.Station.A", "Unknown.Station.B", stations.OuterLoop)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0] != [2]string{"Unknown.Station.A", "Unknown.Station.B"} {
		t.Errorf("candidate = %v, want the original pair unchanged", got[0])
	}

	got = AdjacentSegments(topo, yam+"Shibuya", "Unknown.Station.B", stations.InnerLoop)
	if len(got) != 1 {
		t.Fatalf("got %d candidates for half-unknown pair, want 1", len(got))
	}
}
