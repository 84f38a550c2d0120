package quiz

import "testing"

func TestLevelRaiseCapped(t *testing.T) {
	if got := Level(1).Raise(); got != 2 {
		t.Errorf("Raise from 1 = %d, want 2", got)
	}
	if got := Level(3).Raise(); got != 3 {
		t.Errorf("Raise from 3 = %d, want 3", got)
	}
}

func TestLevelLowerFloored(t *testing.T) {
	if got := Level(3).Lower(); got != 2 {
		t.Errorf("Lower from 3 = %d, want 2", got)
	}
	if got := Level(1).Lower(); got != 1 {
		t.Errorf("Lower from 1 = %d, want 1", got)
	}
}

func TestAdjust(t *testing.T) {
	if got := Level(2).Adjust(true); got != 3 {
		t.Errorf("Adjust(true) = %d, want 3", got)
	}
	if got := Level(2).Adjust(false); got != 1 {
		t.Errorf("Adjust(false) = %d, want 1", got)
	}
}

func TestAdjustSaturation(t *testing.T) {
	l := InitialLevel
	for i := 0; i < 10; i++ {
		l = l.Adjust(true)
	}
	if l != 3 {
		t.Errorf("level after 10 correct = %d, want 3", l)
	}
	for i := 0; i < 10; i++ {
		l = l.Adjust(false)
	}
	if l != 1 {
		t.Errorf("level after 10 incorrect = %d, want 1", l)
	}
}
