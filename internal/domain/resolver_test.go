package domain

import "testing"

func TestReciprocalInvolution(t *testing.T) {
	for h := uint32(0); h < 360; h++ {
		if got := reciprocal(reciprocal(h)); got != h {
			t.Fatalf("reciprocal(reciprocal(%d)) = %d, want %d", h, got, h)
		}
	}
}

func TestReciprocal(t *testing.T) {
	cases := map[uint32]uint32{0: 180, 90: 270, 270: 90, 359: 179}
	for h, want := range cases {
		if got := reciprocal(h); got != want {
			t.Fatalf("reciprocal(%d) = %d, want %d", h, got, want)
		}
	}
}

func TestHemisphere(t *testing.T) {
	cases := map[uint32]int{0: 0, 89: 0, 90: 1, 269: 1, 270: 0, 359: 0}
	for h, want := range cases {
		if got := hemisphere(h); got != want {
			t.Fatalf("hemisphere(%d) = %d, want %d", h, got, want)
		}
	}
}

func fourWayJunction() Junction {
	// exits sorted by heading ascending, one per cardinal direction.
	return Junction{
		ID: 1,
		Exits: []Exit{
			{LinkID: 1, ExitHeading: 0},   // North
			{LinkID: 2, ExitHeading: 90},  // West (this system's convention)
			{LinkID: 3, ExitHeading: 180}, // South
			{LinkID: 4, ExitHeading: 270}, // East
		},
	}
}

func TestFindEntry(t *testing.T) {
	j := fourWayJunction()
	// Arriving heading 0 (travelling North) -> reciprocal 180 -> exit index 2.
	if got := j.FindEntry(0); got != 2 {
		t.Fatalf("FindEntry(0) = %d, want 2", got)
	}
	// Arriving heading 180 -> reciprocal 0 -> exit index 0.
	if got := j.FindEntry(180); got != 0 {
		t.Fatalf("FindEntry(180) = %d, want 0", got)
	}
}

func TestFindExitFromHeading_HemisphereRestriction(t *testing.T) {
	j := fourWayJunction()
	if got := j.FindExitFromHeading(0); got != 0 {
		t.Fatalf("FindExitFromHeading(0) = %d, want 0", got)
	}
	if got := j.FindExitFromHeading(270); got != 3 {
		t.Fatalf("FindExitFromHeading(270) = %d, want 3", got)
	}
}

func TestFindExitFromHeading_NoneWhenHemisphereEmpty(t *testing.T) {
	j := Junction{ID: 1, Exits: []Exit{{LinkID: 1, ExitHeading: 180}}}
	if got := j.FindExitFromHeading(0); got != NoExit {
		t.Fatalf("FindExitFromHeading(0) = %d, want NoExit", got)
	}
}

func TestFindRelativeExit(t *testing.T) {
	j := fourWayJunction()
	if got := j.FindRelativeExit(0, 0); got != 0 {
		t.Fatalf("FindRelativeExit(0,0) = %d, want 0", got)
	}
	if got := j.FindRelativeExit(0, 1); got != 3 {
		t.Fatalf("FindRelativeExit(0,1) = %d, want 3", got)
	}
	if got := j.FindRelativeExit(1, 2); got != 3 {
		t.Fatalf("FindRelativeExit(1,2) = %d, want 3", got)
	}
}

func TestFindExitFromTurnDirection(t *testing.T) {
	j := fourWayJunction()
	// entry=2 (heading 180), reciprocal into = 0 (North).
	// Straight -> heading 0 -> exit 0.
	if got := j.FindExitFromTurnDirection(2, Straight); got != 0 {
		t.Fatalf("Straight: got %d, want 0", got)
	}
	// Left -> heading 90 -> exit 1.
	if got := j.FindExitFromTurnDirection(2, Left); got != 1 {
		t.Fatalf("Left: got %d, want 1", got)
	}
	// Right -> heading 270 -> exit 3.
	if got := j.FindExitFromTurnDirection(2, Right); got != 3 {
		t.Fatalf("Right: got %d, want 3", got)
	}
	// UTurn -> heading 180 -> exit 2.
	if got := j.FindExitFromTurnDirection(2, UTurn); got != 2 {
		t.Fatalf("UTurn: got %d, want 2", got)
	}
}

func TestFindExitFromCompass_Mapping(t *testing.T) {
	j := fourWayJunction()
	if got := j.FindExitFromCompass(North); got != 0 {
		t.Fatalf("North: got %d, want 0", got)
	}
	if got := j.FindExitFromCompass(West); got != 1 {
		t.Fatalf("West: got %d, want 1", got)
	}
	if got := j.FindExitFromCompass(South); got != 2 {
		t.Fatalf("South: got %d, want 2", got)
	}
	if got := j.FindExitFromCompass(East); got != 3 {
		t.Fatalf("East: got %d, want 3", got)
	}
}
