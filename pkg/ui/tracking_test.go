package ui

import "testing"

func TestLedgerDedupsTextFields(t *testing.T) {
	var l fieldLedger
	s := &EditState{}
	l.registerTextField(s)
	l.registerTextField(s)
	l.registerTextField(s)
	if l.textFieldCount != 1 {
		t.Errorf("textFieldCount = %d, want 1", l.textFieldCount)
	}
	if !l.textFieldRegistered(s) {
		t.Error("registered state not found")
	}
	if l.textFieldRegistered(&EditState{}) {
		t.Error("unregistered state reported as registered")
	}
}

func TestLedgerIgnoresNilAndZero(t *testing.T) {
	var l fieldLedger
	l.registerTextField(nil)
	l.registerSlider(0)
	if l.textFieldCount != 0 || l.sliderCount != 0 {
		t.Errorf("counts = %d/%d after nil and zero, want 0/0",
			l.textFieldCount, l.sliderCount)
	}
}

func TestLedgerDedupsSliders(t *testing.T) {
	var l fieldLedger
	l.registerSlider(7)
	l.registerSlider(7)
	l.registerSlider(9)
	if l.sliderCount != 2 {
		t.Errorf("sliderCount = %d, want 2", l.sliderCount)
	}
	if !l.sliderRegistered(7) || !l.sliderRegistered(9) {
		t.Error("registered identities not found")
	}
	if l.sliderRegistered(8) {
		t.Error("unregistered identity reported as registered")
	}
}

func TestLedgerCapacityBound(t *testing.T) {
	var l fieldLedger
	for i := uint32(1); i <= maxTrackedFields*2; i++ {
		l.registerSlider(i)
	}
	if l.sliderCount != maxTrackedFields {
		t.Errorf("sliderCount = %d, want cap %d", l.sliderCount, maxTrackedFields)
	}
}

func TestLedgerResetClearsCounts(t *testing.T) {
	var l fieldLedger
	l.registerTextField(&EditState{})
	l.registerSlider(3)
	l.reset()
	if l.textFieldCount != 0 || l.sliderCount != 0 {
		t.Error("reset left registrations behind")
	}
	if l.sliderRegistered(3) {
		t.Error("slider survived reset")
	}
}
