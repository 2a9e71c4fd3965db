package beach

import (
	"time"
)

// Detail is the merged caller-facing view of a bathing site: the v1
// catalog fields plus the latestSampleDate enrichment. NutsCode is the
// stable upstream-assigned identity.
type Detail struct {
	NutsCode           string   `json:"nutsCode"`
	LocationName       string   `json:"locationName,omitempty"`
	LocationArea       string   `json:"locationArea,omitempty"`
	Classification     *int     `json:"classification,omitempty"`
	ClassificationText string   `json:"classificationText,omitempty"`
	ClassificationYear *int     `json:"classificationYear,omitempty"`
	ContactMail        string   `json:"contactMail,omitempty"`
	ContactPhone       string   `json:"contactPhone,omitempty"`
	ContactURL         string   `json:"contactUrl,omitempty"`
	BathInformation    string   `json:"bathInformation,omitempty"`
	EUMotive           string   `json:"euMotive,omitempty"`
	EUType             *bool    `json:"euType,omitempty"`
	AlgalText          string   `json:"algalText,omitempty"`
	AlgalValue         *int     `json:"algalValue,omitempty"`
	Dissuasion         []string `json:"dissuasion,omitempty"`

	// SampleDate is the v1-embedded sample timestamp in epoch milliseconds,
	// when the upstream provides one.
	SampleDate *int64 `json:"sampleDate,omitempty"`

	// LatestSampleDate is the enrichment field: RFC 3339, or null when
	// neither upstream source yields a date. Always present in responses.
	LatestSampleDate *string `json:"latestSampleDate"`
}

// MonitoringResult is a single entry of the v2 "results" endpoint.
// TakenAt is an ISO-8601 date string and may be null.
type MonitoringResult struct {
	TakenAt *string `json:"takenAt"`
}

// LatestSampleDate decides the merged sample date. The v1 embedded epoch-ms
// timestamp wins outright; otherwise the lexicographic maximum of the
// non-null takenAt values is used (ISO-8601 strings sort chronologically,
// ties keep the first maximum found). Returns nil when no source has a date.
func LatestSampleDate(sampleDateMs *int64, results []MonitoringResult) *string {
	if sampleDateMs != nil {
		iso := time.UnixMilli(*sampleDateMs).UTC().Format(time.RFC3339)
		return &iso
	}

	var latest *string
	for _, r := range results {
		if r.TakenAt == nil {
			continue
		}
		if latest == nil || *r.TakenAt > *latest {
			latest = r.TakenAt
		}
	}
	return latest
}
