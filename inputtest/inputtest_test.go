package inputtest

import (
	"errors"
	"testing"
)

func TestPinServesScriptInOrder(t *testing.T) {
	boom := errors.New("boom")
	p := NewPin(High(), Low(), Err(boom))

	if high, err := p.ReadHigh(); err != nil || !high {
		t.Fatalf("reading 1: got (%v, %v), want (true, nil)", high, err)
	}
	if low, err := p.ReadLow(); err != nil || !low {
		t.Fatalf("reading 2: got (%v, %v), want (true, nil)", low, err)
	}
	if _, err := p.ReadLow(); !errors.Is(err, boom) {
		t.Fatalf("reading 3: got err=%v, want boom", err)
	}
	if err := p.Done(); err != nil {
		t.Fatal(err)
	}
}

func TestPinReadPastEnd(t *testing.T) {
	p := NewPin(Low())
	if _, err := p.ReadLow(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ReadLow(); err == nil {
		t.Fatal("expected an error reading past the end of the script")
	}
}

func TestPinDoneUnconsumed(t *testing.T) {
	p := NewPin(Low(), High())
	if _, err := p.ReadLow(); err != nil {
		t.Fatal(err)
	}
	if p.Remaining() != 1 {
		t.Fatalf("Remaining=%d, want 1", p.Remaining())
	}
	if err := p.Done(); err == nil {
		t.Fatal("expected Done to report unconsumed readings")
	}
}

func TestLevelPin(t *testing.T) {
	p := NewLevelPin(false)
	if high, _ := p.ReadHigh(); high {
		t.Fatal("expected low initially")
	}
	p.Set(true)
	if high, _ := p.ReadHigh(); !high {
		t.Fatal("expected high after Set(true)")
	}
	if low, _ := p.ReadLow(); low {
		t.Fatal("expected not low after Set(true)")
	}
}
