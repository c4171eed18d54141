package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTotalOnEmptyInput(t *testing.T) {
	p := Normalize(nil, "")

	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Languages)
	assert.NotNil(t, p.Links)
	assert.Empty(t, p.Summary)
	assert.Nil(t, p.Contact.Name)
	assert.Nil(t, p.Contact.Email)
	assert.Nil(t, p.Contact.Phone)
	assert.Nil(t, p.Contact.Location)
}

func TestNormalizeSerializedFormKeepsEmptyArrays(t *testing.T) {
	data, err := json.Marshal(Normalize(map[string]interface{}{}, ""))
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"skills", "experience", "education", "certifications", "languages", "links"} {
		arr, ok := m[key].([]interface{})
		assert.True(t, ok, "key %s should be an array", key)
		assert.Empty(t, arr)
	}
	contact, ok := m["contact"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, contact, "name")
	assert.Nil(t, contact["name"])
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := map[string]interface{}{
		"skills":  []interface{}{"Go", " Rust ", ""},
		"summary": "  builds things  ",
		"contact": map[string]interface{}{"full_name": "Jane Roe"},
		"experience": []interface{}{
			map[string]interface{}{
				"role":     "Engineer",
				"employer": "Acme",
				"from":     "2019",
				"to":       "2022",
				"duties":   "shipping, reviewing",
			},
		},
	}
	text := "Jane Roe jane@acme.io +1 (555) 123-4567"

	first := Normalize(raw, text)

	data, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTrip map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &roundTrip))

	second := Normalize(roundTrip, text)
	assert.Equal(t, first, second)
}

func TestNormalizeAlternateKeys(t *testing.T) {
	raw := map[string]interface{}{
		"contact": map[string]interface{}{
			"full_name":    "Jane Roe",
			"phone_number": "555-123-4567",
			"address":      "Berlin",
		},
		"experience": []interface{}{
			map[string]interface{}{
				"role":      "Engineer",
				"employer":  "Acme",
				"startDate": "2019",
				"endDate":   "2022",
				"duties":    []interface{}{"shipped features"},
			},
		},
	}

	p := Normalize(raw, "")

	require.NotNil(t, p.Contact.Name)
	assert.Equal(t, "Jane Roe", *p.Contact.Name)
	require.NotNil(t, p.Contact.Phone)
	assert.Equal(t, "555-123-4567", *p.Contact.Phone)
	require.NotNil(t, p.Contact.Location)
	assert.Equal(t, "Berlin", *p.Contact.Location)

	require.Len(t, p.Experience, 1)
	exp := p.Experience[0]
	assert.Equal(t, "Engineer", exp.Title)
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "2019", exp.StartDate)
	assert.Equal(t, "2022", exp.EndDate)
	assert.Equal(t, []string{"shipped features"}, exp.Responsibilities)
}

func TestNormalizeContactEmailFallback(t *testing.T) {
	p := Normalize(map[string]interface{}{}, "reach me at a.b@example.com")
	require.NotNil(t, p.Contact.Email)
	assert.Equal(t, "a.b@example.com", *p.Contact.Email)
}

func TestNormalizeContactPhoneFallback(t *testing.T) {
	p := Normalize(map[string]interface{}{}, "call +1 (555) 123-4567 anytime")
	require.NotNil(t, p.Contact.Phone)
	assert.Equal(t, "+1 (555) 123-4567", *p.Contact.Phone)
}

func TestNormalizePhoneFallbackRequiresEightDigits(t *testing.T) {
	p := Normalize(map[string]interface{}{}, "room 12-345-67")
	assert.Nil(t, p.Contact.Phone)
}

func TestNormalizeStructuredContactWins(t *testing.T) {
	raw := map[string]interface{}{
		"contact": map[string]interface{}{"email": "structured@example.com"},
	}
	p := Normalize(raw, "text mentions other@example.com")
	require.NotNil(t, p.Contact.Email)
	assert.Equal(t, "structured@example.com", *p.Contact.Email)
}

func TestCoerceStringListFromString(t *testing.T) {
	p := Normalize(map[string]interface{}{
		"skills": "Go, Rust\nKubernetes,,  ",
	}, "")
	assert.Equal(t, []string{"Go", "Rust", "Kubernetes"}, p.Skills)
}

func TestCoerceStringListStringifiesNumbers(t *testing.T) {
	p := Normalize(map[string]interface{}{
		"certifications": []interface{}{"CKA", float64(2021)},
	}, "")
	assert.Equal(t, []string{"CKA", "2021"}, p.Certifications)
}

func TestEducationBareStringBecomesSingleEntry(t *testing.T) {
	p := Normalize(map[string]interface{}{"education": "BSc Computer Science"}, "")
	require.Len(t, p.Education, 1)
	assert.Equal(t, "BSc Computer Science", p.Education[0])
}

func TestEducationArrayPassesThrough(t *testing.T) {
	entry := map[string]interface{}{"school": "MIT", "degree": "MSc"}
	p := Normalize(map[string]interface{}{"education": []interface{}{entry}}, "")
	require.Len(t, p.Education, 1)
	assert.Equal(t, entry, p.Education[0])
}

func TestExperienceSkipsNonObjectEntries(t *testing.T) {
	p := Normalize(map[string]interface{}{
		"experience": []interface{}{
			"just a string",
			map[string]interface{}{"title": "Engineer"},
		},
	}, "")
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
}

func TestIsSparse(t *testing.T) {
	assert.True(t, IsSparse(Normalize(nil, "")))
	assert.True(t, IsSparse(Normalize(map[string]interface{}{"skills": []interface{}{"  "}}, "")))
	assert.False(t, IsSparse(Normalize(map[string]interface{}{"skills": []interface{}{"Go"}}, "")))
	assert.False(t, IsSparse(Normalize(map[string]interface{}{
		"experience": []interface{}{map[string]interface{}{"title": "Engineer"}},
	}, "")))
	assert.False(t, IsSparse(Normalize(nil, "mail me at x@y.io")))

	// Education and the other secondary lists do not rescue a sparse profile.
	assert.True(t, IsSparse(Normalize(map[string]interface{}{
		"education": "BSc", "languages": []interface{}{"German"},
	}, "")))
}
