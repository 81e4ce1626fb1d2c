package types

import "testing"

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("149.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "149.99" {
		t.Errorf("expected 149.99, got %s", m.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Error("expected error for malformed amount")
	}
}

func TestMoneyAdd(t *testing.T) {
	a := NewMoney(10.50)
	b := NewMoney(4.25)
	if got := a.Add(b).String(); got != "14.75" {
		t.Errorf("expected 14.75, got %s", got)
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["Mon 10:00","Wed 10:00"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 2 || l[0] != "Mon 10:00" {
		t.Errorf("unexpected list: %v", l)
	}

	if !l.Contains("Wed 10:00") {
		t.Error("expected Wed 10:00 to be present")
	}
	if l.Contains("Fri 10:00") {
		t.Error("did not expect Fri 10:00")
	}

	var fromString StringList
	if err := fromString.Scan(`["a"]`); err != nil {
		t.Fatalf("unexpected error scanning string: %v", err)
	}
	if len(fromString) != 1 || fromString[0] != "a" {
		t.Errorf("unexpected list: %v", fromString)
	}
}
