package meet

import (
	"reflect"
	"testing"
)

func snapshotWithFinals() *State {
	return &State{
		Events: []Event{
			{Name: "Women 60m", Gender: Women, Round: RoundFinal, Status: StatusFinal},
			{Name: "Women 200m", Gender: Women, Round: RoundFinal, Status: StatusScheduled},
			{Name: "Men 60m Prelims", Gender: Men, Round: RoundPrelim, Status: StatusFinal},
			{Name: "Men 1 Mile", Gender: Men, Round: RoundFinal, Status: StatusFinal},
		},
		Combined: []CombinedResult{
			{EventName: "Pentathlon", Gender: Women, Status: StatusFinal, Athletes: []Athlete{{Name: "A", Team: "T"}}},
			{EventName: "Heptathlon", Gender: Men, Status: StatusInProgress, Athletes: []Athlete{{Name: "B", Team: "T"}}},
		},
	}
}

func TestDetectNewFinals(t *testing.T) {
	state := snapshotWithFinals()

	tests := []struct {
		name     string
		previous map[string]bool
		wantNew  []string
	}{
		{
			name:     "first run reports everything complete",
			previous: map[string]bool{},
			wantNew:  []string{"Men 1 Mile", "Pentathlon", "Women 60m"},
		},
		{
			name:     "already known finals are not repeated",
			previous: map[string]bool{"Women 60m": true, "Pentathlon": true},
			wantNew:  []string{"Men 1 Mile"},
		},
		{
			name:     "nothing new",
			previous: map[string]bool{"Women 60m": true, "Men 1 Mile": true, "Pentathlon": true},
			wantNew:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh, updated := DetectNewFinals(state, tt.previous)
			if !reflect.DeepEqual(fresh, tt.wantNew) {
				t.Errorf("new finals = %v, want %v", fresh, tt.wantNew)
			}

			// Updated set always reflects exactly what is complete now.
			want := map[string]bool{"Women 60m": true, "Men 1 Mile": true, "Pentathlon": true}
			if !reflect.DeepEqual(updated, want) {
				t.Errorf("updated set = %v, want %v", updated, want)
			}
		})
	}
}

func TestDetectNewFinalsExcludes(t *testing.T) {
	state := snapshotWithFinals()
	fresh, updated := DetectNewFinals(state, map[string]bool{})

	for _, name := range fresh {
		switch name {
		case "Women 200m":
			t.Error("scheduled final must not be reported")
		case "Men 60m Prelims":
			t.Error("completed prelim must not be reported")
		case "Heptathlon":
			t.Error("in-progress combined event must not be reported")
		}
	}
	if updated["Women 200m"] || updated["Men 60m Prelims"] || updated["Heptathlon"] {
		t.Errorf("updated set holds non-final entries: %v", updated)
	}
}

func TestDetectNewFinalsDoesNotMutateInput(t *testing.T) {
	state := snapshotWithFinals()
	previous := map[string]bool{"Women 60m": true}
	DetectNewFinals(state, previous)
	if len(previous) != 1 || !previous["Women 60m"] {
		t.Errorf("input set was mutated: %v", previous)
	}
}
