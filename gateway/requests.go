package gateway

// ExportQuery bounds an export to a time window, as Unix seconds. It is sent
// in the query string.
type ExportQuery struct {
	StartDate int64 `url:"startDate,omitempty"`
	EndDate   int64 `url:"endDate,omitempty"`
}

// BlacklistEntry adds a single value (an IP, an email, a card hash...) to the
// merchant blacklist.
type BlacklistEntry struct {
	ValueType string `json:"valueType"`
	Value     string `json:"value"`
}
