package scoring

// PlacePoints is the meet scoring table. Places 9+ and unplaced athletes
// score zero.
var PlacePoints = map[int]float64{
	1: 10, 2: 8, 3: 6, 4: 5, 5: 4, 6: 3, 7: 2, 8: 1,
}

func pointsFor(place int) float64 {
	return PlacePoints[place]
}

// scoringPlaces is the last place that earns points.
const scoringPlaces = 8
