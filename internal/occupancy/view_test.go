package occupancy

import "testing"

func TestOccupancyRate(t *testing.T) {
	cases := []struct {
		count    int64
		capacity int
		want     int
	}{
		{0, 50, 0},
		{25, 50, 50},
		{50, 50, 100},
		{60, 50, 120}, // capacity is advisory, rate may exceed 100
		{1, 3, 33},
		{2, 3, 67},
		{5, 0, 0}, // unset capacity never divides by zero
	}
	for _, tc := range cases {
		if got := occupancyRate(tc.count, tc.capacity); got != tc.want {
			t.Errorf("occupancyRate(%d, %d) = %d, want %d", tc.count, tc.capacity, got, tc.want)
		}
	}
}
