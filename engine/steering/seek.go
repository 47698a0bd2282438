package steering

// Seek heads straight for the target at maximum speed. It never slows,
// stops or completes.
type Seek struct {
	base
}

// NewSeek creates a seek behaviour for data toward target.
func NewSeek(data *SteeringData, target Target) *Seek {
	s := &Seek{
		base: newBase(data, target, Options{
			NoSlow:              true,
			NoStop:              true,
			NeverCompletes:      true,
			CloseEnoughDistance: DefaultCloseEnoughDistance,
		}),
	}
	s.self = s
	return s
}

// SetTarget replaces the target.
func (s *Seek) SetTarget(t Target) {
	s.target = t
}

// Steer returns the change from the current velocity to the full-speed
// velocity toward the target.
func (s *Seek) Steer() Output {
	k := s.kinematic()
	if k == nil {
		return NoEffect()
	}
	to, ok := s.target.Location()
	if !ok {
		return NoEffect()
	}
	return seekOutput(k, to)
}
