package domain

import "time"

// Report is the persisted record of one leak run.
type Report struct {
	Machine   string    `json:"machine"`
	KnownSize int       `json:"known_size"`
	Recovered string    `json:"recovered"`
	Confident int       `json:"confident"`
	Results   Recovery  `json:"results"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// NewReport summarizes r.
func NewReport(machine string, target Target, r Recovery, at time.Time) Report {
	return Report{
		Machine:   machine,
		KnownSize: target.KnownSize,
		Recovered: string(r.Bytes()),
		Confident: r.ConfidentCount(),
		Results:   r,
		Timestamp: at,
	}
}
