package engine

import "time"

// checkGameOver accumulates dwell time for settled fruit whose top edge is
// above the ceiling line while nearly at rest. A fruit that drops back below
// the line or moves faster than DwellSpeed starts over from zero. The latch
// trips once any fruit has dwelt for DwellTime.
func (s *Session) checkGameOver(dt time.Duration) {
	if s.gameOver {
		return
	}
	for _, f := range s.settled {
		if f.Top() >= s.cfg.CeilingY || f.Speed() > s.cfg.DwellSpeed {
			s.dwell.Del(f.ID)
			continue
		}
		held, _ := s.dwell.Get(f.ID)
		held += dt
		s.dwell.Put(f.ID, held)
		if held >= s.cfg.DwellTime {
			s.latchGameOver()
			return
		}
	}
}

// latchGameOver trips the one-way latch and notifies the collaborator.
func (s *Session) latchGameOver() {
	s.gameOver = true
	s.active = nil
	if s.opts.GameOver != nil {
		s.opts.GameOver.OnGameOver(s.score)
	}
}

// DwellTime returns the accumulated time the given settled fruit has spent
// above the ceiling line.
func (s *Session) DwellTime(id FruitID) time.Duration {
	d, _ := s.dwell.Get(id)
	return d
}

// Danger returns the largest dwell fraction in [0, 1] across the settled
// set, for warning indicators.
func (s *Session) Danger() float64 {
	if s.cfg.DwellTime <= 0 {
		return 0
	}
	worst := 0.0
	for _, f := range s.settled {
		d, ok := s.dwell.Get(f.ID)
		if !ok {
			continue
		}
		frac := float64(d) / float64(s.cfg.DwellTime)
		if frac > worst {
			worst = frac
		}
	}
	if worst > 1 {
		worst = 1
	}
	return worst
}
