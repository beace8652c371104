package dto

// ImportReport is the response of POST /api/import/excel.
//
// TotalRows counts the candidate set after column renaming, coercion and
// date-range filtering; Skipped additionally counts the rows dropped before
// that point (missing required fields, out-of-range dates) plus duplicates
// and row-level write failures from the insert loop.
type ImportReport struct {
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"`
	TotalRows int `json:"total_rows"`
}
