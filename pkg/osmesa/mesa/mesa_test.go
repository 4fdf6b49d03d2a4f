package mesa

import "testing"

func TestLoadIsCached(t *testing.T) {
	e1 := Load()
	e2 := Load()
	if e1 != e2 {
		t.Errorf("load result is not cached: %v vs %v", e1, e2)
	}
}
