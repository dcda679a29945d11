package seenstore

// Local keeps seen keys in an in-process map (default).
type Local struct {
	m map[string]struct{}
}

// NewLocal returns a map-backed store sized for roughly hint keys.
// hint <= 0 is fine.
func NewLocal(hint int) *Local {
	if hint < 0 {
		hint = 0
	}
	return &Local{m: make(map[string]struct{}, hint)}
}

func (s *Local) Add(key string) (bool, error) {
	if _, ok := s.m[key]; ok {
		return false, nil
	}
	s.m[key] = struct{}{}
	return true, nil
}

func (s *Local) Len() int { return len(s.m) }

func (s *Local) Close() error { return nil }
