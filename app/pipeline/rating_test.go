package pipeline

import "testing"

func TestNormalizeRating(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	cases := []struct {
		in   string
		want string
	}{
		{"AGE84", "L"},
		{"4+", "L"},
		{"AGE85", "10"},
		{"AGE89", "18"},
		{"12 anos", "12"},
		{"[14]", "14"},
		{"AGE215", ""},
		{"S/C", ""},
		{"Sem Classificação", ""},
		{"PG-13", "PG-13"},
	}

	for _, c := range cases {
		rec := &Record{Rating: c.in}
		p.normalizeRating(rec)
		if rec.Rating != c.want {
			t.Errorf("Rating %q: expected %q, got %q", c.in, c.want, rec.Rating)
		}
	}
}

func TestNormalizeRatingEmpty(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	rec := &Record{}
	p.normalizeRating(rec)
	if rec.Rating != "" {
		t.Errorf("Expected empty rating untouched, got %q", rec.Rating)
	}
}
