package entity_test

import (
	"testing"

	"github.com/defff666/cryptodivebot/internal/entity"
	"gotest.tools/assert"
)

func TestCompatibleWithIsTotal(t *testing.T) {
	for _, g := range entity.AllGenders() {
		compatible := g.CompatibleWith()
		if len(compatible) == 0 {
			t.Errorf("gender %q maps to an empty compatible set", g)
		}
	}
}

func TestCompatibleWithTable(t *testing.T) {
	cases := map[entity.Gender][]entity.Gender{
		entity.GenderMale:    {entity.GenderFemale, entity.GenderBi},
		entity.GenderFemale:  {entity.GenderMale, entity.GenderBi},
		entity.GenderLesbian: {entity.GenderFemale, entity.GenderBi, entity.GenderLesbian},
		entity.GenderGay:     {entity.GenderMale, entity.GenderBi, entity.GenderGay},
		entity.GenderBi:      entity.AllGenders(),
	}

	for gender, expected := range cases {
		assert.DeepEqual(t, gender.CompatibleWith(), expected)
	}
}

func TestUnknownGenderFallsBackToPermissive(t *testing.T) {
	unknown := entity.Gender("Androgyne")

	assert.Assert(t, !unknown.Known())
	assert.DeepEqual(t, unknown.CompatibleWith(), entity.AllGenders())
}

func TestCandidateFilterCityCaseInsensitive(t *testing.T) {
	filter := entity.CandidateFilter{
		City:    "berlin",
		Genders: []entity.Gender{entity.GenderFemale},
	}
	profile := &entity.Profile{ID: 1, City: "Berlin", Gender: entity.GenderFemale}

	assert.Assert(t, filter.Matches(profile))
}

func TestCandidateFilterInterestWaiver(t *testing.T) {
	profile := &entity.Profile{
		ID:        1,
		City:      "Berlin",
		Gender:    entity.GenderFemale,
		Interests: []string{"art"},
	}

	noInterests := entity.CandidateFilter{
		City:    "Berlin",
		Genders: []entity.Gender{entity.GenderFemale},
	}
	assert.Assert(t, noInterests.Matches(profile))

	disjoint := entity.CandidateFilter{
		City:      "Berlin",
		Genders:   []entity.Gender{entity.GenderFemale},
		Interests: []string{"music"},
	}
	assert.Assert(t, !disjoint.Matches(profile))
}

func TestCandidateFilterInterestsCompareExactly(t *testing.T) {
	profile := &entity.Profile{
		ID:        1,
		City:      "Berlin",
		Gender:    entity.GenderFemale,
		Interests: []string{"Music"},
	}

	differentCase := entity.CandidateFilter{
		City:      "Berlin",
		Genders:   []entity.Gender{entity.GenderFemale},
		Interests: []string{"music"},
	}
	assert.Assert(t, !differentCase.Matches(profile))

	sameCase := entity.CandidateFilter{
		City:      "Berlin",
		Genders:   []entity.Gender{entity.GenderFemale},
		Interests: []string{"Music"},
	}
	assert.Assert(t, sameCase.Matches(profile))
}

func TestCandidateFilterExcludesBlockedAndListed(t *testing.T) {
	filter := entity.CandidateFilter{
		City:       "Berlin",
		Genders:    []entity.Gender{entity.GenderFemale},
		ExcludeIDs: []int64{7},
	}

	blocked := &entity.Profile{ID: 1, City: "Berlin", Gender: entity.GenderFemale, Blocked: true}
	assert.Assert(t, !filter.Matches(blocked))

	excluded := &entity.Profile{ID: 7, City: "Berlin", Gender: entity.GenderFemale}
	assert.Assert(t, !filter.Matches(excluded))
}
