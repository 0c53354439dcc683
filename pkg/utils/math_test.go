package utils

import "testing"

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 11: true, 13: true, 97: true}
	for n := -3; n <= 100; n++ {
		want := primes[n]
		if n == 7 || n == 17 || n == 19 || n == 23 || n == 29 || n == 31 || n == 37 ||
			n == 41 || n == 43 || n == 47 || n == 53 || n == 59 || n == 61 || n == 67 ||
			n == 71 || n == 73 || n == 79 || n == 83 || n == 89 {
			want = true
		}
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{3, 0.1, 2, 2},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
