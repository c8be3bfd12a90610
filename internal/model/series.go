package model

// Series is a documentary series of the retention table.
type Series struct {
	ID   int64  `json:"id"`
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}

// Subseries is nested under exactly one Series.
type Subseries struct {
	ID       int64  `json:"id"`
	SeriesID int64  `json:"serie_id"`
	Code     string `json:"codigo"`
	Name     string `json:"nombre"`
}
