package entity

// Party is a litigant and their advocate.
type Party struct {
	Name     string `json:"name"`
	Advocate string `json:"advocate"`
}

// CaseDetails holds the registration block of a portal case page.
type CaseDetails struct {
	CNRNumber          string `json:"CNR Number"`
	FilingNumber       string `json:"Filing Number"`
	FilingDate         string `json:"Filing Date"`
	RegistrationNumber string `json:"Registration Number"`
	RegistrationDate   string `json:"Registration Date"`
	CNRDate            string `json:"CNR Date"`
}

// CourtDetails identifies the court and bench.
type CourtDetails struct {
	CourtName           string `json:"Court Name"`
	CourtNumberAndJudge string `json:"Court Number & Judge"`
	CourtComplex        string `json:"Court Complex"`
}

// CaseStatus holds the stage and hearing block. Dates are free text such as "17th November 2025".
type CaseStatus struct {
	CaseStage        string `json:"Case Stage"`
	CaseSubStage     string `json:"Case Sub Stage"`
	FirstHearingDate string `json:"First Hearing Date,omitempty"`
	NextHearingDate  string `json:"Next Hearing Date,omitempty"`
	PurposeOfHearing string `json:"Purpose of Hearing,omitempty"`
	DecisionDate     string `json:"Decision Date,omitempty"`
	NatureOfDisposal string `json:"Nature of Disposal,omitempty"`
}

// Parties lists petitioners and respondents in portal order.
type Parties struct {
	Petitioners []Party `json:"Petitioner(s)"`
	Respondents []Party `json:"Respondent(s)"`
}

// CaseInfo is the normalised result of a CNR lookup, in the shape the portal displays it.
type CaseInfo struct {
	CNR           string       `json:"cnr"`
	CaseDetails   CaseDetails  `json:"case_details"`
	CourtDetails  CourtDetails `json:"court_details"`
	CaseStatus    CaseStatus   `json:"case_status"`
	Parties       Parties      `json:"parties"`
	CaseType      string       `json:"case_type"`
	UnderAct      string       `json:"under_act"`
	UnderSection  string       `json:"under_section"`
	Source        string       `json:"source"`
	RetrievedAt   string       `json:"retrieved_at"`
	DisplayFormat string       `json:"display_format"`
	Note          string       `json:"note,omitempty"`
	IsRealData    bool         `json:"is_real_data"`
}

// LookupKind tags where a CaseInfo came from.
type LookupKind int

const (
	// KindRealData marks data taken from the portal or the known-case table.
	KindRealData LookupKind = iota + 1
	// KindPlaceholder marks data synthesised from the CNR alone. It is not authoritative.
	KindPlaceholder
)

// String returns the kind name used in logs.
func (k LookupKind) String() string {
	switch k {
	case KindRealData:
		return "real"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// LookupResult is the tagged outcome of a lookup. Callers must switch on Kind.
type LookupResult struct {
	Kind LookupKind
	Info CaseInfo
}

// RealData wraps info as authoritative data.
func RealData(info CaseInfo) LookupResult {
	info.IsRealData = true
	return LookupResult{Kind: KindRealData, Info: info}
}

// Placeholder wraps info as synthesised data.
func Placeholder(info CaseInfo) LookupResult {
	info.IsRealData = false
	return LookupResult{Kind: KindPlaceholder, Info: info}
}
