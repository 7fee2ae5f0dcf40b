package flappy

// Scoreboard tracks the current run and the best score.
type Scoreboard struct {
	Score     int
	Highscore int
	persisted int // Highscore value last written to the store
}

// award adds one point and raises the best score if needed.
func (s *Scoreboard) award() {
	s.Score++
	if s.Score > s.Highscore {
		s.Highscore = s.Score
	}
}

// resetRun starts a new run at zero.
func (s *Scoreboard) resetRun() {
	s.Score = 0
}

// dirty reports whether the best score changed since the last save.
func (s *Scoreboard) dirty() bool {
	return s.Highscore != s.persisted
}

// awardPassing marks pipes that are fully behind the bird as passed and
// scores one point per pair. Only the flipped half of a pair scores.
// Returns the number of points awarded.
func awardPassing(pipes []Pipe, birdX, margin float64, board *Scoreboard) int {
	points := 0
	for i := range pipes {
		p := &pipes[i]
		if p.Passed {
			continue
		}
		if p.Pos.X >= birdX-margin {
			continue
		}
		p.Passed = true
		if p.Flipped {
			board.award()
			points++
		}
	}
	return points
}
