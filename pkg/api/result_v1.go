// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one mode's answer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Mode    string    `json:"mode"` // "values" | "ranges"
	Minimum int64     `json:"minimum"`
	Seeds   int       `json:"seeds"`  // seed values or seed ranges consumed
	Pieces  int       `json:"pieces"` // final values or final ranges produced
	Ranges  []RangeV1 `json:"ranges,omitempty"`
}

// RangeV1 is a closed interval; End is Begin+Length-1.
type RangeV1 struct {
	Begin  int64 `json:"begin"`
	End    int64 `json:"end"`
	Length int64 `json:"length"`
}

// CheckV1 is the schema for the equivalence check.
type CheckV1 struct {
	OK           bool   `json:"ok"`
	ValuesMin    int64  `json:"values_min"`
	SingletonMin int64  `json:"singleton_min"`
	RangesMin    *int64 `json:"ranges_min,omitempty"`
	BruteMin     *int64 `json:"brute_min,omitempty"`
	BruteValues  int64  `json:"brute_values,omitempty"`
}
