package game

import "github.com/DedS3t/monopoly-simulator/app/models"

// scriptedSource replays raw Intn results in order, wrapping around.
type scriptedSource struct {
	values []int
	i      int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v % n
}

// dice converts die faces to the raw values Roll consumes.
func dice(faces ...int) *scriptedSource {
	raw := make([]int, len(faces))
	for i, f := range faces {
		raw[i] = f - 1
	}
	return &scriptedSource{values: raw}
}

// smallBoard has four squares of price 10 and rent 100 so that a single rent
// payment bankrupts a player holding 100.
func smallBoard() []models.Property {
	return []models.Property{
		{Name: "Start", Position: 0, Price: 10, Rent: 100},
		{Name: "North", Position: 1, Price: 10, Rent: 100},
		{Name: "East", Position: 2, Price: 10, Rent: 100},
		{Name: "South", Position: 3, Price: 10, Rent: 100},
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds(kind EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
