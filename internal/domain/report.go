package domain

import "encoding/json"

// ReportResult is the outcome of interpreting a generator reply. Exactly one
// of the two implementations is produced: StructuredReport when the reply
// parsed as the expected JSON object, RawTextReport when only the raw text
// could be salvaged.
type ReportResult interface {
	// Narrative returns the user-facing report text.
	Narrative() string
	isReportResult()
}

// StructuredReport is a fully parsed generator reply. The identity fields
// echo the computed inputs; Texto carries the narrative in markdown.
type StructuredReport struct {
	SunSign    string `json:"sun_sign"`
	MoonSign   string `json:"moon_sign"`
	Ascendant  string `json:"ascendant"`
	LifePath   int    `json:"life_path"`
	SoulUrge   int    `json:"soul_urge"`
	Expression int    `json:"expression"`
	Texto      string `json:"texto"`
}

func (r *StructuredReport) Narrative() string { return r.Texto }
func (r *StructuredReport) isReportResult()   {}

// RawTextReport is the degraded outcome: the reply was not valid JSON after
// every repair attempt, so the whole text is kept as the narrative.
type RawTextReport struct {
	Text string
}

func (r *RawTextReport) Narrative() string { return r.Text }
func (r *RawTextReport) isReportResult()   {}

// DecodeStructuredReport parses raw as a StructuredReport, requiring a JSON
// object with a non-empty texto.
func DecodeStructuredReport(raw []byte) (*StructuredReport, error) {
	var rep StructuredReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, err
	}
	if rep.Texto == "" {
		return nil, &ResponseParseError{Reason: "missing texto"}
	}
	return &rep, nil
}
