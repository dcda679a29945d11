package seenstore

import "testing"

func TestBigCacheAdd(t *testing.T) {
	s, err := NewBigCache(BigCacheConfig{})
	if err != nil {
		t.Fatalf("NewBigCache: %v", err)
	}
	defer s.Close()

	added, err := s.Add("AAA-BBB-CCC")
	if err != nil || !added {
		t.Fatalf("first Add = (%v, %v), want (true, nil)", added, err)
	}
	added, err = s.Add("AAA-BBB-CCC")
	if err != nil || added {
		t.Fatalf("second Add = (%v, %v), want (false, nil)", added, err)
	}
	if _, err := s.Add("DDD-EEE-FFF"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}
