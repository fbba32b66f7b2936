package judging

import "testing"

func TestSetValueKeepsSingleColumn(t *testing.T) {
	var s Submission

	s.SetValue(RatingValue(7))
	if s.RatingValue == nil || *s.RatingValue != 7 {
		t.Fatalf("rating: want=7 got=%v", s.RatingValue)
	}
	if s.BooleanValue != nil || s.TextValue != nil {
		t.Fatalf("other columns must stay nil after rating")
	}

	s.SetValue(BooleanValue(true))
	if s.BooleanValue == nil || !*s.BooleanValue {
		t.Fatalf("boolean: want=true got=%v", s.BooleanValue)
	}
	if s.RatingValue != nil || s.TextValue != nil {
		t.Fatalf("switching shapes must clear the previous column")
	}

	s.SetValue(TextValue("shipped on day one"))
	if s.TextValue == nil || *s.TextValue != "shipped on day one" {
		t.Fatalf("text: want set got=%v", s.TextValue)
	}
	if s.RatingValue != nil || s.BooleanValue != nil {
		t.Fatalf("switching shapes must clear the previous column")
	}
}

func TestValueRoundTrip(t *testing.T) {
	var s Submission
	if s.Value() != nil {
		t.Fatalf("empty submission must carry no value")
	}

	s.SetValue(RatingValue(4))
	v, ok := s.Value().(RatingValue)
	if !ok || v != 4 {
		t.Fatalf("value: want RatingValue(4) got %#v", s.Value())
	}
}

func TestBandForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  ScoreBand
	}{
		{9.5, BandGreen},
		{8.0, BandGreen},
		{7.9, BandAmber},
		{6.0, BandAmber},
		{5.9, BandRed},
		{0, BandRed},
	}
	for _, tc := range cases {
		if got := BandForScore(tc.score); got != tc.want {
			t.Fatalf("band(%v): want=%q got=%q", tc.score, tc.want, got)
		}
	}
}
