package report

import (
	"testing"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testChart() *domain.BirthChart {
	return &domain.BirthChart{
		Positions: map[domain.Body]domain.Position{
			domain.BodySun:       {Longitude: 135.5, Sign: "Leo", Degree: 15.5},
			domain.BodyMoon:      {Longitude: 100, Sign: "Cancer", Degree: 10},
			domain.BodyAscendant: {Longitude: 170, Sign: "Virgo", Degree: 20},
		},
		Aspects: []domain.Aspect{
			{BodyA: domain.BodySun, BodyB: domain.BodyMoon, Type: domain.AspectSquare, Angle: 88.5, Orb: 1.5},
		},
		Timezone:  "America/Sao_Paulo",
		JulianDay: 2451545.0,
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	birth := domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	}
	numbers := domain.NumerologyProfile{LifePath: 7, SoulUrge: 2, Expression: 5}
	chart := testChart()

	first := BuildPrompt(birth, chart, numbers)
	second := BuildPrompt(birth, chart, numbers)

	assert.Equal(t, first, second)
}

func TestBuildPromptContent(t *testing.T) {
	birth := domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	}
	numbers := domain.NumerologyProfile{LifePath: 7, SoulUrge: 2, Expression: 5}

	prompt := BuildPrompt(birth, testChart(), numbers)

	assert.Contains(t, prompt, "Name: Maria Silva")
	assert.Contains(t, prompt, "- Sun sign: Leo")
	assert.Contains(t, prompt, "- Moon sign: Cancer")
	assert.Contains(t, prompt, "- Ascendant: Virgo")
	assert.Contains(t, prompt, "SUN Square MOON")
	assert.Contains(t, prompt, "- Life path: 7")
	assert.Contains(t, prompt, `"texto"`)
	assert.Contains(t, prompt, "## Who You Are")
	assert.Contains(t, prompt, "## Love and Relationships")
	assert.Contains(t, prompt, "## Career and Purpose")
	assert.Contains(t, prompt, "## Your 30-Day Plan")
}

func TestBuildGuruPromptIncludesChartContext(t *testing.T) {
	sunSign := "Leo"
	session := &domain.ReportSession{
		FullName:  "Maria Silva",
		BirthDate: "1990-05-10",
		SunSign:   &sunSign,
	}

	prompt := BuildGuruPrompt("What about my career?", session)

	assert.Contains(t, prompt, "Sun sign: Leo")
	assert.Contains(t, prompt, "Question: What about my career?")
	assert.NotContains(t, prompt, "Moon sign:")
}

func TestBuildCompatibilityPromptNamesBothPeople(t *testing.T) {
	own := domain.BirthInput{FullName: "Maria Silva", BirthDate: "1990-05-10", BirthCity: "Sao Paulo", BirthCountry: "Brazil"}
	target := domain.BirthInput{FullName: "Joao Souza", BirthDate: "1988-03-02"}

	prompt := BuildCompatibilityPrompt(own, target)

	assert.Contains(t, prompt, "Person A: Maria Silva, born 1990-05-10 in Sao Paulo, Brazil")
	assert.Contains(t, prompt, "Person B: Joao Souza, born 1988-03-02")
}
