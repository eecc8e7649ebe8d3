package route

import (
	"reflect"
	"testing"
)

func TestEvaluate_RelativeStraightFollowsCorridor(t *testing.T) {
	n := corridorNetwork()
	r := Parse("1 -1.825 200.0 1 Relative:Straight Count:2")

	got := Evaluate(n, r)
	want := []Hop{{JunctionID: 2, ExitIndex: 0}, {JunctionID: 3, ExitIndex: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
}

func TestEvaluate_CompassAlwaysStopsWhenNoMatchingExit(t *testing.T) {
	n := corridorNetwork()
	r := Parse("3 0 0 -1 Compass:North Always")

	got := Evaluate(n, r)
	want := []Hop{{JunctionID: 3, ExitIndex: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Evaluate = %v, want %v (dead end at junction 4 has no northern exit)", got, want)
	}
}

func TestEvaluate_UnknownStartLinkYieldsNoHops(t *testing.T) {
	n := corridorNetwork()
	r := Parse("99 0 0 1 Relative:Straight Count:1")

	if got := Evaluate(n, r); got != nil {
		t.Fatalf("Evaluate = %v, want nil", got)
	}
}

func TestEvaluate_DeadEndHasNoStraightExit(t *testing.T) {
	n := corridorNetwork()
	// Starting already on link 3 heading toward junction 4, which has
	// only one exit (back the way it came) — going straight fails the
	// hemisphere check at the very first junction.
	r := Parse("3 0 0 1 Relative:Straight Count:5")

	if got := Evaluate(n, r); len(got) != 0 {
		t.Fatalf("Evaluate = %v, want none", got)
	}
}

func TestEvaluate_MissingUpcomingJunctionTerminatesEvaluation(t *testing.T) {
	n := danglingNetwork()
	r := Parse("1 0 0 1 Relative:Straight Count:5")

	got := Evaluate(n, r)
	want := []Hop{{JunctionID: 2, ExitIndex: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
}

func TestEvaluate_ZeroCountPatternEmitsNothing(t *testing.T) {
	n := corridorNetwork()
	r := Parse("1 0 0 1 Relative:Straight Count:0")

	if got := Evaluate(n, r); len(got) != 0 {
		t.Fatalf("Evaluate = %v, want none", got)
	}
}
