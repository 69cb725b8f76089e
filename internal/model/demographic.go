package model

// Gender buckets. Unknown absorbs null/unrecognized values.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// AgeBracket is one of five ordered, non-overlapping age buckets, plus
// unknown for missing ages.
type AgeBracket string

const (
	BracketUnder18 AgeBracket = "under18"
	Bracket18To30  AgeBracket = "age18to30"
	Bracket30To45  AgeBracket = "age30to45"
	Bracket45To60  AgeBracket = "age45to60"
	BracketOver60  AgeBracket = "over60"
	BracketUnknown AgeBracket = "unknown"
)

// AgeBrackets lists the buckets in display order, unknown last.
var AgeBrackets = []AgeBracket{
	BracketUnder18,
	Bracket18To30,
	Bracket30To45,
	Bracket45To60,
	BracketOver60,
	BracketUnknown,
}

// Genders lists the gender buckets in display order, unknown last.
var Genders = []Gender{GenderMale, GenderFemale, GenderUnknown}

// BracketForAge maps an age to its bracket. Boundaries: 18 and 30 belong to
// age18to30, 45 to age30to45, 60 to age45to60. known=false yields unknown.
// The CASE expressions in the postgres repository must stay in sync with this.
func BracketForAge(age int, known bool) AgeBracket {
	switch {
	case !known:
		return BracketUnknown
	case age < 18:
		return BracketUnder18
	case age <= 30:
		return Bracket18To30
	case age <= 45:
		return Bracket30To45
	case age <= 60:
		return Bracket45To60
	default:
		return BracketOver60
	}
}

// NormalizeGender maps an arbitrary stored value to a Gender bucket.
func NormalizeGender(raw string) Gender {
	switch raw {
	case string(GenderMale):
		return GenderMale
	case string(GenderFemale):
		return GenderFemale
	default:
		return GenderUnknown
	}
}
