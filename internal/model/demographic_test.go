package model

import "testing"

func TestBracketForAge(t *testing.T) {
	cases := []struct {
		name  string
		age   int
		known bool
		want  AgeBracket
	}{
		{"unknown age", 0, false, BracketUnknown},
		{"unknown age ignores value", 42, false, BracketUnknown},
		{"below lower boundary", 17, true, BracketUnder18},
		{"lower boundary of 18-30", 18, true, Bracket18To30},
		{"upper boundary of 18-30", 30, true, Bracket18To30},
		{"lower boundary of 30-45", 31, true, Bracket30To45},
		{"upper boundary of 30-45", 45, true, Bracket30To45},
		{"lower boundary of 45-60", 46, true, Bracket45To60},
		{"upper boundary of 45-60", 60, true, Bracket45To60},
		{"above upper boundary", 61, true, BracketOver60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BracketForAge(tc.age, tc.known)
			if got != tc.want {
				t.Errorf("BracketForAge(%d, %v) = %s, want %s", tc.age, tc.known, got, tc.want)
			}
		})
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := []struct {
		raw  string
		want Gender
	}{
		{"male", GenderMale},
		{"female", GenderFemale},
		{"", GenderUnknown},
		{"other", GenderUnknown},
		{"MALE", GenderUnknown},
	}

	for _, tc := range cases {
		if got := NormalizeGender(tc.raw); got != tc.want {
			t.Errorf("NormalizeGender(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestRankedEntityTotal(t *testing.T) {
	t.Run("scalar count", func(t *testing.T) {
		e := RankedEntity{Count: 7}
		if e.Total() != 7 {
			t.Errorf("Total() = %d, want 7", e.Total())
		}
	})

	t.Run("cross-tab counts win over scalar", func(t *testing.T) {
		e := RankedEntity{Count: 99, Counts: map[string]int64{"male": 3, "female": 4}}
		if e.Total() != 7 {
			t.Errorf("Total() = %d, want 7", e.Total())
		}
	})
}
