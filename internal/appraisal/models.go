package appraisal

import "github.com/campusworks/faculty-appraisal/internal/scoring"

// Submission lifecycle. Drafts are freely editable; submitting moves the
// form to pending; the HOD settles it as approved or rejected. An approved
// submission is frozen and rejects further edits. A rejected one reopens
// for correction and resubmission.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Submission is one faculty member's complete appraisal form for one
// academic year: the five activity sections plus review state.
type Submission struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	AcademicYear string `json:"academic_year"`
	Status       Status `json:"status"`

	Research            scoring.ResearchSection            `json:"research"`
	Administration      scoring.AdministrationSection      `json:"administration"`
	Academics           scoring.AcademicsSection           `json:"academics"`
	IndustryInteraction scoring.IndustryInteractionSection `json:"industry_interaction"`
	PlacementActivities scoring.PlacementActivitiesSection `json:"placement_activities"`

	TotalPoints float64 `json:"total_points"`

	SubmittedAt   int64  `json:"submitted_at,omitempty"`
	ReviewedAt    int64  `json:"reviewed_at,omitempty"`
	ReviewedBy    string `json:"reviewed_by,omitempty"`
	ReviewComment string `json:"review_comment,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Rescore recomputes every record's points, every section total, and the
// grand total from the raw activity attributes. Stores call this before
// every persist so client-supplied point values never reach disk.
func (s *Submission) Rescore() {
	scoring.ScoreResearch(&s.Research)
	scoring.ScoreAdministration(&s.Administration)
	scoring.ScoreAcademics(&s.Academics)
	scoring.ScoreIndustryInteraction(&s.IndustryInteraction)
	scoring.ScorePlacementActivities(&s.PlacementActivities)
	s.TotalPoints = scoring.GrandTotal(
		s.Research,
		s.Administration,
		s.Academics,
		s.IndustryInteraction,
		s.PlacementActivities,
	)
}
