package report

import (
	"fmt"
	"strings"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// BuildPrompt renders the generation prompt. The output is a pure function
// of its inputs: same chart and numbers, same prompt, byte for byte.
func BuildPrompt(birth domain.BirthInput, chart *domain.BirthChart, numbers domain.NumerologyProfile) string {
	var b strings.Builder

	b.WriteString("You are Sky.AI, a warm and precise astrologer and numerologist.\n")
	b.WriteString("Write a personalized report for the person below.\n\n")

	fmt.Fprintf(&b, "Name: %s\n", birth.FullName)
	fmt.Fprintf(&b, "Birth date: %s\n", birth.BirthDate)
	fmt.Fprintf(&b, "Birth time: %s\n", birth.BirthTime)
	fmt.Fprintf(&b, "Birth place: %s, %s\n\n", birth.BirthCity, birth.BirthCountry)

	b.WriteString("Computed birth chart:\n")
	fmt.Fprintf(&b, "- Sun sign: %s\n", chart.SignOf(domain.BodySun))
	fmt.Fprintf(&b, "- Moon sign: %s\n", chart.SignOf(domain.BodyMoon))
	fmt.Fprintf(&b, "- Ascendant: %s\n", chart.SignOf(domain.BodyAscendant))

	for _, body := range domain.TrackedBodies {
		if pos, ok := chart.Positions[body]; ok {
			fmt.Fprintf(&b, "- %s: %s at %.2f degrees\n", body, pos.Sign, pos.Degree)
		}
	}

	if len(chart.Aspects) > 0 {
		b.WriteString("\nAspects:\n")
		for _, aspect := range chart.Aspects {
			fmt.Fprintf(&b, "- %s %s %s (orb %.2f)\n", aspect.BodyA, aspect.Type, aspect.BodyB, aspect.Orb)
		}
	}

	b.WriteString("\nNumerology:\n")
	fmt.Fprintf(&b, "- Life path: %d\n", numbers.LifePath)
	fmt.Fprintf(&b, "- Soul urge: %d\n", numbers.SoulUrge)
	fmt.Fprintf(&b, "- Expression: %d\n\n", numbers.Expression)

	b.WriteString("Respond with a single JSON object and nothing else, using exactly these keys:\n")
	b.WriteString(`{"sun_sign": "...", "moon_sign": "...", "ascendant": "...", "life_path": 0, "soul_urge": 0, "expression": 0, "texto": "..."}`)
	b.WriteString("\n\n")
	b.WriteString("The texto field holds the full report in markdown with these sections, each exactly once:\n")
	b.WriteString("## Who You Are\n")
	b.WriteString("## Love and Relationships\n")
	b.WriteString("## Career and Purpose\n")
	b.WriteString("## Your 30-Day Plan\n")

	return b.String()
}

// BuildGuruPrompt renders the prompt for a follow-up question
func BuildGuruPrompt(question string, session *domain.ReportSession) string {
	var b strings.Builder

	b.WriteString("You are Sky.AI, a warm and precise astrologer and numerologist.\n")
	b.WriteString("Answer the question below for this person, in plain text.\n\n")

	fmt.Fprintf(&b, "Name: %s\n", session.FullName)
	fmt.Fprintf(&b, "Birth date: %s\n", session.BirthDate)
	if session.SunSign != nil {
		fmt.Fprintf(&b, "Sun sign: %s\n", *session.SunSign)
	}
	if session.MoonSign != nil {
		fmt.Fprintf(&b, "Moon sign: %s\n", *session.MoonSign)
	}
	if session.Ascendant != nil {
		fmt.Fprintf(&b, "Ascendant: %s\n", *session.Ascendant)
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	return b.String()
}

// BuildCompatibilityPrompt renders the prompt for a love compatibility
// reading between the requesting person and a partner
func BuildCompatibilityPrompt(own domain.BirthInput, target domain.BirthInput) string {
	var b strings.Builder

	b.WriteString("You are Sky.AI, a warm and precise astrologer and numerologist.\n")
	b.WriteString("Write a love compatibility reading for these two people, in markdown.\n\n")

	fmt.Fprintf(&b, "Person A: %s, born %s", own.FullName, own.BirthDate)
	if own.BirthCity != "" {
		fmt.Fprintf(&b, " in %s, %s", own.BirthCity, own.BirthCountry)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Person B: %s, born %s", target.FullName, target.BirthDate)
	if target.BirthCity != "" {
		fmt.Fprintf(&b, " in %s, %s", target.BirthCity, target.BirthCountry)
	}
	b.WriteString("\n")

	return b.String()
}
