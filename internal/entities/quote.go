package entities

// NightlyRate is one calendar row actually found for the quoted window.
// The breakdown is returned even when the stay is unavailable so callers can
// see whether the failure was a missing day or an unavailable one.
type NightlyRate struct {
	Date        string `json:"date"`
	Rate        int    `json:"rate"`
	IsAvailable bool   `json:"is_available"`
}

type Quote struct {
	Nights           int           `json:"nights"`
	IsAvailable      bool          `json:"is_available"`
	NightlyBreakdown []NightlyRate `json:"nightly_breakdown"`
	Subtotal         int64         `json:"subtotal"`
	GSTRate          float64       `json:"gst_rate"`
	GST              int64         `json:"gst"`
	Total            int64         `json:"total"`
}
