package reportController

import "github.com/AndreaVaz0608/skyai/internal/domain"

// createReportRequest is the body of POST /api/reports
type createReportRequest struct {
	FullName     string `json:"full_name"`
	BirthDate    string `json:"birth_date"`
	BirthTime    string `json:"birth_time"`
	BirthCity    string `json:"birth_city"`
	BirthCountry string `json:"birth_country"`
}

func (r *createReportRequest) toBirthInput() domain.BirthInput {
	return domain.BirthInput{
		FullName:     r.FullName,
		BirthDate:    r.BirthDate,
		BirthTime:    r.BirthTime,
		BirthCity:    r.BirthCity,
		BirthCountry: r.BirthCountry,
	}
}

// askGuruRequest is the body of POST /api/guru
type askGuruRequest struct {
	Question string `json:"question"`
}

// compatibilityRequest is the body of POST /api/compatibility
type compatibilityRequest struct {
	FullName     string `json:"full_name"`
	BirthDate    string `json:"birth_date"`
	BirthTime    string `json:"birth_time"`
	BirthCity    string `json:"birth_city"`
	BirthCountry string `json:"birth_country"`
}

func (r *compatibilityRequest) toBirthInput() domain.BirthInput {
	return domain.BirthInput{
		FullName:     r.FullName,
		BirthDate:    r.BirthDate,
		BirthTime:    r.BirthTime,
		BirthCity:    r.BirthCity,
		BirthCountry: r.BirthCountry,
	}
}
