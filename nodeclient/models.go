package nodeclient

import "time"

// StatusResponse is the bare acknowledgment several endpoints return.
type StatusResponse struct {
	Status bool `json:"status"`
}

// Display formats used for the derived date/time fields on payments and
// transfers.
const (
	displayDateFormat = "2006-01-02"
	displayTimeFormat = "15:04:05"
)

// Timestamps holds the created/updated unix timestamps common to
// payments and transfers, plus their derived display forms. The derived
// fields never feed back into the underlying timestamps.
type Timestamps struct {
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`

	CreatedAtDate string `json:"created_at_date,omitempty"`
	CreatedAtTime string `json:"created_at_time,omitempty"`
	UpdatedAtDate string `json:"updated_at_date,omitempty"`
	UpdatedAtTime string `json:"updated_at_time,omitempty"`
}

func (t *Timestamps) fillCreatedDisplay() {
	created := time.Unix(t.CreatedAt, 0)
	t.CreatedAtDate = created.Format(displayDateFormat)
	t.CreatedAtTime = created.Format(displayTimeFormat)
}

func (t *Timestamps) fillUpdatedDisplay() {
	updated := time.Unix(t.UpdatedAt, 0)
	t.UpdatedAtDate = updated.Format(displayDateFormat)
	t.UpdatedAtTime = updated.Format(displayTimeFormat)
}
