package models

// WarningKind classifies a source coverage finding.
type WarningKind string

const (
	// WarnSourcesBelowMinimum means a product has fewer than three source rows.
	WarnSourcesBelowMinimum WarningKind = "sources_lt3"
	// WarnMissingOfficial means no source row is classified as official.
	WarnMissingOfficial WarningKind = "missing_official"
	// WarnMissingThirdParty means no row is a store, review, media or research source.
	WarnMissingThirdParty WarningKind = "missing_third"
)

// Warning is an informational finding about one product's evidence.
type Warning struct {
	// Product is the product name the finding applies to.
	Product string `json:"product"`
	// Kind is the finding type.
	Kind WarningKind `json:"kind"`
	// Message is the localized operator-facing text.
	Message string `json:"message,omitempty"`
}

// SheetData is one prepared report section.
type SheetData struct {
	// Kind is the sheet kind.
	Kind SheetKind `json:"kind"`
	// Title is the localized sheet title.
	Title string `json:"title"`
	// Rows are the localized data rows in output order.
	Rows []Row `json:"rows"`
}

// Report is the fully prepared workbook content.
type Report struct {
	// Language is the resolved locale code.
	Language string `json:"language"`
	// Sheets holds the five sheets in SheetOrder.
	Sheets []SheetData `json:"sheets"`
	// Warnings are the source coverage findings.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Sheet returns the sheet of the given kind.
func (r *Report) Sheet(kind SheetKind) (SheetData, bool) {
	for _, s := range r.Sheets {
		if s.Kind == kind {
			return s, true
		}
	}
	return SheetData{}, false
}

// Titles returns the sheet titles in workbook order.
func (r *Report) Titles() []string {
	titles := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		titles[i] = s.Title
	}
	return titles
}
