package meet

import "strings"

// Class is a closed classification of event disciplines. It is computed once
// when an event is built and drives mark ordering and seeding policy.
type Class string

const (
	ClassSprint         Class = "sprint"
	ClassHurdle         Class = "hurdle"
	ClassMiddleDistance Class = "middle-distance"
	ClassDistance       Class = "distance"
	ClassField          Class = "field"
	ClassRelay          Class = "relay"
	ClassCombined       Class = "combined"
)

var fieldKeywords = []string{
	"jump", "vault", "throw", "shot", "weight", "discus", "javelin", "hammer",
}

// Classify maps an event name to its discipline class. Matching works on the
// gender-stripped, lowercased name. Unrecognized running events fall back to
// middle-distance; that keeps ordering (lower mark is better) correct for
// anything timed.
func Classify(eventName string) Class {
	name := strings.ToLower(eventName)
	name = strings.Replace(name, "women", "", 1)
	name = strings.Replace(name, "men", "", 1)
	name = strings.TrimSpace(name)

	switch {
	case strings.Contains(name, "pentathlon"), strings.Contains(name, "heptathlon"):
		return ClassCombined
	case strings.Contains(name, "relay"), strings.Contains(name, "dmr"):
		return ClassRelay
	case strings.Contains(name, "hurdle"):
		return ClassHurdle
	}
	for _, kw := range fieldKeywords {
		if strings.Contains(name, kw) {
			return ClassField
		}
	}
	switch {
	case strings.Contains(name, "60m"), strings.Contains(name, "200m"), strings.Contains(name, "400m"):
		return ClassSprint
	case strings.Contains(name, "3000"), strings.Contains(name, "5000"):
		return ClassDistance
	}
	return ClassMiddleDistance
}

// FieldMeasured reports whether a larger mark is the better one. Everything
// else is timed, where a smaller mark wins.
func (c Class) FieldMeasured() bool {
	return c == ClassField
}

// UsesPrelimSeed reports whether the final-round effective seed should come
// from the athlete's prelim mark when one exists. That covers the short
// sprints and the 60m hurdles; longer races and field events always seed
// from the season best.
func (c Class) UsesPrelimSeed() bool {
	return c == ClassSprint || c == ClassHurdle
}

// InferGender derives the division from an event name. Pentathlon is a
// women's event, Heptathlon a men's event, on the indoor schedule.
func InferGender(eventName string) Gender {
	name := strings.ToLower(eventName)
	if strings.Contains(name, "women") {
		return Women
	}
	if strings.Contains(name, "pentathlon") && !strings.Contains(name, "heptathlon") {
		return Women
	}
	return Men
}
