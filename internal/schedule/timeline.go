package schedule

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// PhaseSpec is the persisted shape of a phase the calculator needs.
type PhaseSpec struct {
	ID          uuid.UUID
	Name        string
	Order       int
	LengthWeeks int
}

// TimelinePhase is one computed phase window.
type TimelinePhase struct {
	PhaseID    uuid.UUID  `json:"phase_id"`
	Name       string     `json:"name"`
	Order      int        `json:"order"`
	Start      civil.Date `json:"start_date"`
	End        civil.Date `json:"end_date"`
	LengthDays int        `json:"length_days"`
}

// Window returns the phase's date range.
func (p TimelinePhase) Window() Window {
	return Window{Start: p.Start, End: p.End}
}

// Timeline is the not yet persisted result of picking a launch date for a campaign.
type Timeline struct {
	CampaignID    uuid.UUID       `json:"campaign_id"`
	CampaignStart civil.Date      `json:"campaign_start_date"`
	CampaignEnd   *civil.Date     `json:"campaign_end_date"`
	Phases        []TimelinePhase `json:"phases"`
}

// Empty reports whether the timeline has no phases and therefore no end date.
func (t Timeline) Empty() bool {
	return len(t.Phases) == 0
}

// CalculateTimeline folds ComputePhaseWindow over the phases in the order given.
// The phases must already be sorted by their order; they are not re-sorted here.
func CalculateTimeline(campaignID uuid.UUID, launch civil.Date, phases []PhaseSpec) Timeline {
	tl := Timeline{
		CampaignID:    campaignID,
		CampaignStart: launch,
		Phases:        make([]TimelinePhase, 0, len(phases)),
	}

	var prevEnd *civil.Date
	for _, phase := range phases {
		w := ComputePhaseWindow(launch, prevEnd, phase.LengthWeeks)
		tl.Phases = append(tl.Phases, TimelinePhase{
			PhaseID:    phase.ID,
			Name:       phase.Name,
			Order:      phase.Order,
			Start:      w.Start,
			End:        w.End,
			LengthDays: w.LengthDays(),
		})
		end := w.End
		prevEnd = &end
	}

	if prevEnd != nil {
		tl.CampaignEnd = prevEnd
	}
	return tl
}
