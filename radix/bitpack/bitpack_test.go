package bitpack

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct{ order, idx uint32 }{
		{0, 0},
		{1, 1},
		{65535, 65535},
		{12345, 54321},
		{0, 65535},
		{65535, 0},
	}
	for _, c := range cases {
		packed := PackOrderIndex(c.order, c.idx)
		gotOrder, gotIdx := UnpackOrderIndex(packed)
		if gotOrder != c.order || gotIdx != c.idx {
			t.Errorf("PackOrderIndex(%d,%d) round trip = (%d,%d)", c.order, c.idx, gotOrder, gotIdx)
		}
	}
}
