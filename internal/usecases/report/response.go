package report

import (
	"strings"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// InterpretReply turns a raw generator reply into a report result. Repair
// steps run in order until one yields valid JSON: fence stripping, brace
// slicing, quote and control-character escaping inside texto. A reply that
// survives none of them still completes the session as raw text.
func InterpretReply(raw string) domain.ReportResult {
	cleaned := stripFences(strings.TrimSpace(raw))

	candidates := []string{cleaned}
	if sliced, ok := sliceBraces(cleaned); ok && sliced != cleaned {
		candidates = append(candidates, sliced)
	}

	for _, candidate := range candidates {
		for _, attempt := range []string{candidate, escapeTextoValue(candidate)} {
			rep, err := domain.DecodeStructuredReport([]byte(attempt))
			if err != nil {
				continue
			}
			rep.Texto = DedupeSections(rep.Texto)
			return rep
		}
	}

	return &domain.RawTextReport{Text: DedupeSections(cleaned)}
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if newline := strings.IndexByte(s, '\n'); newline >= 0 {
		// drop the language tag line ("json", "JSON", empty)
		tag := strings.TrimSpace(s[:newline])
		if len(tag) <= 8 {
			s = s[newline+1:]
		}
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// sliceBraces cuts the substring from the first '{' to the last '}',
// discarding prose the model wrapped around the object
func sliceBraces(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// escapeTextoValue escapes raw backslashes, quotes, newlines, carriage
// returns and tabs inside the texto string value. Models often emit literal
// line breaks or unescaped quotes there, which breaks JSON parsing while the
// rest of the object is fine. The value spans from the quote after the texto
// key to the last quote in the payload, so embedded quotes stay inside it.
func escapeTextoValue(s string) string {
	keyIdx := strings.Index(s, `"texto"`)
	if keyIdx < 0 {
		return s
	}

	colonIdx := strings.IndexByte(s[keyIdx+len(`"texto"`):], ':')
	if colonIdx < 0 {
		return s
	}

	openIdx := strings.IndexByte(s[keyIdx+len(`"texto"`)+colonIdx:], '"')
	if openIdx < 0 {
		return s
	}
	valueStart := keyIdx + len(`"texto"`) + colonIdx + openIdx + 1

	closeIdx := strings.LastIndexByte(s, '"')
	if closeIdx <= valueStart {
		return s
	}

	value := s[valueStart:closeIdx]
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)

	return s[:valueStart] + replacer.Replace(value) + s[closeIdx:]
}

// DedupeSections drops repeated markdown sections, keeping the first
// occurrence of each "## " heading. Models sometimes emit the 30-day plan
// twice.
func DedupeSections(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]bool)

	var out []string
	skipping := false

	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
			if seen[key] {
				skipping = true
				continue
			}
			seen[key] = true
			skipping = false
		}
		if !skipping {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
