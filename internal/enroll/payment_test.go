package enroll

import "testing"

func TestSeededDecider_Deterministic(t *testing.T) {
	s := NewStudent("Ava", 25, "CS101-9")

	a := SeededDecider(42)
	b := SeededDecider(42)

	for i := 0; i < 20; i++ {
		if a.Approve(s) != b.Approve(s) {
			t.Fatalf("deciders with equal seeds diverged at draw %d", i)
		}
	}
}

func TestRandomDecider_ProducesBothOutcomes(t *testing.T) {
	s := NewStudent("Ava", 25, "CS101-9")
	d := RandomDecider()

	seen := map[bool]bool{}
	for i := 0; i < 1000; i++ {
		seen[d.Approve(s)] = true
	}

	if !seen[true] || !seen[false] {
		t.Error("expected an unweighted decider to produce both outcomes over 1000 draws")
	}
}
