package engine

// ResolveMerges fuses touching same-tier pairs in the settled set until no
// pair qualifies. Each pass walks pairs in index order and lets every fruit
// merge at most once; passes repeat while any merge happened, so chain
// reactions finish before returning. Top-tier pairs never merge.
// Returns the number of merges performed.
func (s *Session) ResolveMerges() int {
	total := 0
	for {
		n := s.mergePass()
		if n == 0 {
			return total
		}
		total += n
	}
}

// mergePass performs one scan over the settled set.
func (s *Session) mergePass() int {
	consumed := make([]bool, len(s.settled))
	var born []*Fruit

	for i := range s.settled {
		if consumed[i] {
			continue
		}
		a := s.settled[i]
		for j := i + 1; j < len(s.settled); j++ {
			if consumed[j] {
				continue
			}
			b := s.settled[j]
			if a.Tier != b.Tier || !s.touching(a, b) {
				continue
			}
			f, ok := s.merge(a, b)
			if !ok {
				continue
			}
			consumed[i], consumed[j] = true, true
			born = append(born, f)
			break
		}
	}

	if len(born) == 0 {
		return 0
	}

	kept := make([]*Fruit, 0, len(s.settled)-len(born))
	for i, f := range s.settled {
		if consumed[i] {
			s.dwell.Del(f.ID)
			continue
		}
		kept = append(kept, f)
	}
	s.settled = append(kept, born...)
	return len(born)
}

// touching reports whether two fruit are close enough to merge.
func (s *Session) touching(a, b *Fruit) bool {
	return within(a, b, a.Radius+b.Radius-s.cfg.MergeSlack)
}

// merge creates the successor of a and b at their midpoint, lifted by the
// new radius so it does not immediately sink into the floor, and awards its
// score. Reports false when a and b are top tier.
func (s *Session) merge(a, b *Fruit) (*Fruit, bool) {
	next, ok := s.catalog.NextTier(a.Tier)
	if !ok {
		return nil, false
	}

	x := (a.X + b.X) / 2
	y := (a.Y+b.Y)/2 - next.Radius
	f := s.newFruit(next.Index, x, y)
	f.X = clampF(f.X, f.Radius, s.cfg.PitWidth-f.Radius)
	if f.Bottom() > s.cfg.PitHeight {
		f.Y = s.cfg.PitHeight - f.Radius
	}
	f.Settled = true
	f.Released = true
	f.Rolled = true

	s.merges++
	s.score += next.Score
	if s.opts.Score != nil {
		s.opts.Score.OnScoreChanged(s.score)
	}
	return f, true
}
