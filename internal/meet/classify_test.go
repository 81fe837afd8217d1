package meet

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"Women 60m", ClassSprint},
		{"Men 200m", ClassSprint},
		{"Women 400m", ClassSprint},
		{"Women 60m Hurdles", ClassHurdle},
		{"Men 800m", ClassMiddleDistance},
		{"Women 1 Mile", ClassMiddleDistance},
		{"Men 1000m", ClassMiddleDistance},
		{"Women 3000m", ClassDistance},
		{"Men 5000m", ClassDistance},
		{"Women Long Jump", ClassField},
		{"Men Pole Vault", ClassField},
		{"Women Shot Put", ClassField},
		{"Men Weight Throw", ClassField},
		{"Women 4x400m Relay", ClassRelay},
		{"Men DMR", ClassRelay},
		{"Women Pentathlon", ClassCombined},
		{"Men Heptathlon", ClassCombined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassOrdering(t *testing.T) {
	if ClassField.FieldMeasured() != true {
		t.Error("field events should rank larger marks better")
	}
	for _, c := range []Class{ClassSprint, ClassHurdle, ClassMiddleDistance, ClassDistance, ClassRelay} {
		if c.FieldMeasured() {
			t.Errorf("%v should rank smaller (faster) marks better", c)
		}
	}
}

func TestUsesPrelimSeed(t *testing.T) {
	tests := []struct {
		class Class
		want  bool
	}{
		{ClassSprint, true},
		{ClassHurdle, true},
		{ClassMiddleDistance, false},
		{ClassDistance, false},
		{ClassField, false},
		{ClassRelay, false},
	}
	for _, tt := range tests {
		if got := tt.class.UsesPrelimSeed(); got != tt.want {
			t.Errorf("%v.UsesPrelimSeed() = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestInferGender(t *testing.T) {
	tests := []struct {
		name string
		want Gender
	}{
		{"Women 200m", Women},
		{"Men 200m", Men},
		{"Pentathlon", Women},
		{"Heptathlon", Men},
		{"60m", Men}, // no marker defaults to Men
	}
	for _, tt := range tests {
		if got := InferGender(tt.name); got != tt.want {
			t.Errorf("InferGender(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
