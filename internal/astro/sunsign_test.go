package astro

import "testing"

func TestCalculateSunSign(t *testing.T) {
	cases := []struct {
		month, day int
		want       string
	}{
		{3, 25, "aries"},
		{4, 25, "taurus"},
		{7, 4, "cancer"},
		{12, 25, "capricorn"},
		{1, 5, "capricorn"},
		{1, 25, "aquarius"},
		{3, 10, "pisces"},
		{8, 10, "leo"},
		{1, 1, "capricorn"},
		{12, 21, "sagittarius"},
	}
	for _, c := range cases {
		if got := CalculateSunSign(c.month, c.day); got != c.want {
			t.Errorf("CalculateSunSign(%d, %d) = %s, want %s", c.month, c.day, got, c.want)
		}
	}
}
