package debounce

import "testing"

func TestWordBitPositions(t *testing.T) {
	if got := pack(fields[uint8]{High: true}); got != 0b01 {
		t.Fatalf("state flag packs to %#x, want 0x1", got)
	}
	if got := pack(fields[uint8]{Init: true}); got != 0b10 {
		t.Fatalf("init flag packs to %#x, want 0x2", got)
	}
	if got := pack(fields[uint8]{Integrator: 1}); got != 0b100 {
		t.Fatalf("one integrator unit packs to %#x, want 0x4", got)
	}
	if got := pack(fields[uint8]{High: true, Init: true, Integrator: 3}); got != 0b1111 {
		t.Fatalf("full word packs to %#x, want 0xf", got)
	}
}

func TestWordRoundTrip(t *testing.T) {
	cases := []fields[uint8]{
		{},
		{High: true},
		{Init: true},
		{High: true, Init: true, Integrator: 1},
		{Init: true, Integrator: 0x3f},
	}
	for _, f := range cases {
		if got := unpack(pack(f)); got != f {
			t.Fatalf("round trip of %+v gave %+v", f, got)
		}
	}
}

func TestWordRoundTripWideStorages(t *testing.T) {
	f16 := fields[uint16]{High: true, Init: true, Integrator: 0x3fff}
	if got := unpack(pack(f16)); got != f16 {
		t.Fatalf("uint16 round trip of %+v gave %+v", f16, got)
	}
	f32 := fields[uint32]{Init: true, Integrator: 0x3fffffff}
	if got := unpack(pack(f32)); got != f32 {
		t.Fatalf("uint32 round trip of %+v gave %+v", f32, got)
	}
	f64 := fields[uint64]{High: true, Integrator: 0x3fffffffffffffff}
	if got := unpack(pack(f64)); got != f64 {
		t.Fatalf("uint64 round trip of %+v gave %+v", f64, got)
	}
}

func TestPolicyValidate(t *testing.T) {
	for _, c := range []struct {
		maxCount uint8
		ok       bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{0x3f, true},
		{0x40, false},
		{0xff, false},
	} {
		err := Policy[uint8]{MaxCount: c.maxCount}.validate()
		if c.ok && err != nil {
			t.Fatalf("MaxCount=%#x: unexpected error %v", c.maxCount, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("MaxCount=%#x: expected ErrInvalidPolicy", c.maxCount)
		}
	}
}

func TestPolicyValidateWideStorages(t *testing.T) {
	if err := (Policy[uint16]{MaxCount: 0x3fff}).validate(); err != nil {
		t.Fatalf("uint16 MaxCount=0x3fff: unexpected error %v", err)
	}
	if err := (Policy[uint16]{MaxCount: 0x4000}).validate(); err == nil {
		t.Fatal("uint16 MaxCount=0x4000: expected ErrInvalidPolicy")
	}
	if err := (Policy[uint32]{MaxCount: 0x3fffffff}).validate(); err != nil {
		t.Fatalf("uint32 MaxCount=0x3fffffff: unexpected error %v", err)
	}
	if err := (Policy[uint32]{MaxCount: 0x40000000}).validate(); err == nil {
		t.Fatal("uint32 MaxCount=0x40000000: expected ErrInvalidPolicy")
	}
	if err := (Policy[uint64]{MaxCount: 1<<62 - 1}).validate(); err != nil {
		t.Fatalf("uint64 MaxCount=1<<62-1: unexpected error %v", err)
	}
	if err := (Policy[uint64]{MaxCount: 1 << 62}).validate(); err == nil {
		t.Fatal("uint64 MaxCount=1<<62: expected ErrInvalidPolicy")
	}
}
