package entity

// Gender tags as collected by the registration web form.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderBi      Gender = "Bi"
	GenderLesbian Gender = "Lesbian"
	GenderGay     Gender = "Gay"
)

// compatibleGenders is the single source of truth for candidate filtering.
// Every caller goes through CompatibleWith; do not build ad hoc copies of
// this table at call sites.
var compatibleGenders = map[Gender][]Gender{
	GenderMale:    {GenderFemale, GenderBi},
	GenderFemale:  {GenderMale, GenderBi},
	GenderLesbian: {GenderFemale, GenderBi, GenderLesbian},
	GenderGay:     {GenderMale, GenderBi, GenderGay},
	GenderBi:      {GenderMale, GenderFemale, GenderBi, GenderLesbian, GenderGay},
}

func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderBi, GenderLesbian, GenderGay}
}

func (g Gender) Known() bool {
	_, ok := compatibleGenders[g]
	return ok
}

// CompatibleWith returns the gender tags a profile with tag g may be shown.
// Unrecognized tags fall back to the full enumeration so a profile with a
// stale or imported tag is never starved of candidates.
func (g Gender) CompatibleWith() []Gender {
	if compatible, ok := compatibleGenders[g]; ok {
		return compatible
	}
	return AllGenders()
}
