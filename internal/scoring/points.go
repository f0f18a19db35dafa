package scoring

import "github.com/shopspring/decimal"

// Per-record scoring rules. Each function is a pure mapping from a record's
// raw attributes to its point value for the submitting faculty member.
// Category caps are applied later, at aggregation (see aggregate.go).
//
// Arithmetic is fixed-point decimal throughout so repeated recomputation
// never drifts; totals are always rebuilt from scratch, never patched.

var (
	pointsQuarter      = decimal.RequireFromString("0.25")
	pointsHalf         = decimal.RequireFromString("0.5")
	pointsOne          = decimal.NewFromInt(1)
	pointsTwo          = decimal.NewFromInt(2)
	pointsFirstConf    = decimal.RequireFromString("0.6")
	appraisalHigh      = decimal.RequireFromString("0.25")
	appraisalMid       = decimal.RequireFromString("0.20")
	appraisalLow       = decimal.RequireFromString("0.15")
	committeeHighRate  = decimal.RequireFromString("0.75")
	committeeBaseRate  = decimal.RequireFromString("0.5")
	lakh               = decimal.NewFromInt(100000)
	placementHalfPoint = decimal.RequireFromString("0.5")
)

func clampNonNegative(v float64) decimal.Decimal {
	if v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// sponsoredProjectTiers maps a minimum funding amount (INR) to points.
// Ordered highest first; the first threshold at or below the amount wins.
var sponsoredProjectTiers = []struct {
	min    int64
	points int64
}{
	{2000000, 10},
	{1000000, 8},
	{500000, 6},
	{200000, 4},
	{100000, 2},
	{25000, 1},
}

// SponsoredProjectPoints scores a funded project by its funding tier. When
// a PI is listed alongside co-investigators the record carries the PI's
// 60% share.
func SponsoredProjectPoints(p SponsoredProject) decimal.Decimal {
	amount := clampNonNegative(p.FundingAmount)
	base := decimal.Zero
	for _, t := range sponsoredProjectTiers {
		if amount.GreaterThanOrEqual(decimal.NewFromInt(t.min)) {
			base = decimal.NewFromInt(t.points)
			break
		}
	}
	if hasPrincipalInvestigator(p.Investigators) && len(p.Investigators) > 1 {
		return SplitSixtyForty(base, len(p.Investigators)-1).Primary
	}
	return base
}

// PatentPoints: granted 10, published 5, filed (or anything else) 0.
func PatentPoints(p Patent) decimal.Decimal {
	var base decimal.Decimal
	switch p.Status {
	case PatentGranted:
		base = decimal.NewFromInt(10)
	case PatentPublished:
		base = decimal.NewFromInt(5)
	default:
		base = decimal.Zero
	}
	if hasPrincipalInventor(p.Inventors) && len(p.Inventors) > 1 {
		return SplitSixtyForty(base, len(p.Inventors)-1).Primary
	}
	return base
}

// ConsultancyPoints: one point per lakh of consultancy revenue. The
// category cap of 10 is applied at aggregation, not per record.
func ConsultancyPoints(p ConsultancyProject) decimal.Decimal {
	return clampNonNegative(p.Amount).Div(lakh)
}

// PhDScholarPoints: awarded or submitted 10, pursuing 2. The pursuing
// subtotal is capped at 10 during aggregation; awarded/submitted is not.
func PhDScholarPoints(s PhDScholar) decimal.Decimal {
	var base decimal.Decimal
	switch s.Status {
	case ScholarAwarded, ScholarSubmitted:
		base = decimal.NewFromInt(10)
	case ScholarPursuing:
		base = pointsTwo
	default:
		base = decimal.Zero
	}
	if hasMainGuide(s.Supervisors) && len(s.Supervisors) > 1 {
		return SplitSixtyForty(base, len(s.Supervisors)-1).Primary
	}
	return base
}

// JournalPaperPoints: SCI/Scopus indexing is worth 4, anything else 0.
// With multiple authors and a designated first author, the record carries
// the first author's flat 2; co-authors split the remainder.
func JournalPaperPoints(p JournalPaper) decimal.Decimal {
	base := decimal.Zero
	if p.Indexing == IndexSCI || p.Indexing == IndexScopus {
		base = decimal.NewFromInt(4)
	}
	if hasFirstAuthor(p.Authors) && len(p.Authors) > 1 {
		return SplitFlat(base, pointsTwo, len(p.Authors)-1).Primary
	}
	return base
}

// ConferencePaperPoints: SCI/Scopus/Web of Science indexing is worth 1.
// First author's flat share is 0.6.
func ConferencePaperPoints(p ConferencePaper) decimal.Decimal {
	base := decimal.Zero
	switch p.Indexing {
	case IndexSCI, IndexScopus, IndexWebOfScience:
		base = pointsOne
	}
	if hasFirstAuthor(p.Authors) && len(p.Authors) > 1 {
		return SplitFlat(base, pointsFirstConf, len(p.Authors)-1).Primary
	}
	return base
}

// ConferenceOrganizedPoints: flat 1 per event organized.
func ConferenceOrganizedPoints(ConferenceOrganized) decimal.Decimal {
	return pointsOne
}

// AdministrativeRolePoints: one point per year held, floored at 1 when any
// positive duration exists and clipped at 6. Malformed or inverted date
// ranges degrade to zero.
func AdministrativeRolePoints(r AdministrativeRole) decimal.Decimal {
	years := durationYears(r.StartDate, r.EndDate)
	if years.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if years.LessThan(pointsOne) {
		years = pointsOne
	}
	return decimal.Min(years, decimal.NewFromInt(6))
}

// higherCommitteeRoles earn 0.75/year instead of the base 0.5/year.
var higherCommitteeRoles = map[string]bool{
	"Chairman":              true,
	"PG Coordinator":        true,
	"Deputy Warden":         true,
	"NSS Coordinator":       true,
	"NCC Coordinator":       true,
	"Cultural Coordinator":  true,
	"Sports Coordinator":    true,
	"Associate COE":         true,
	"NAAC Coordinator":      true,
	"NBA Coordinator":       true,
	"NIRF Coordinator":      true,
	"IIC President":         true,
	"ERP Coordinator":       true,
	"Timetable Coordinator": true,
}

// CommitteeRolePoints: 0.75/year for the enumerated higher roles, 0.5/year
// otherwise, at most 5 per record.
func CommitteeRolePoints(r CommitteeRole) decimal.Decimal {
	years := durationYears(r.StartDate, r.EndDate)
	if years.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := committeeBaseRate
	if higherCommitteeRoles[r.Role] {
		rate = committeeHighRate
	}
	return decimal.Min(rate.Mul(years), decimal.NewFromInt(5))
}

// DepartmentalActivityPoints: 0.25 per six-month semester of duty, at most
// 5 per record.
func DepartmentalActivityPoints(a DepartmentalActivity) decimal.Decimal {
	semesters := durationMonths(a.StartDate, a.EndDate).Div(decimal.NewFromInt(6))
	if semesters.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.Min(pointsQuarter.Mul(semesters), decimal.NewFromInt(5))
}

// WorkshopPoints: flat 0.5 per workshop regardless of role or duration.
// Participant and organizer subtotals are capped separately at aggregation.
func WorkshopPoints(Workshop) decimal.Decimal {
	return pointsHalf
}

// CertificationPoints: flat 0.5 per completed certification course.
func CertificationPoints(Certification) decimal.Decimal {
	return pointsHalf
}

// NewLabPoints: flat 4 per laboratory established, no aggregation cap.
func NewLabPoints(NewLab) decimal.Decimal {
	return decimal.NewFromInt(4)
}

// PGDissertationPoints: flat 0.5 per dissertation guided.
func PGDissertationPoints(PGDissertation) decimal.Decimal {
	return pointsHalf
}

// UGProjectPoints: flat 0.25 per project guided.
func UGProjectPoints(UGProject) decimal.Decimal {
	return pointsQuarter
}

// BookPublishedPoints: international 3, national (or unrecognized) 2.
func BookPublishedPoints(b BookPublished) decimal.Decimal {
	if b.Level == BookInternational {
		return decimal.NewFromInt(3)
	}
	return pointsTwo
}

// percentageThreshold is the shared table for faculty appraisal and subject
// results. Exact boundary values land in the higher tier.
func percentageThreshold(pct float64) decimal.Decimal {
	p := clampNonNegative(pct)
	switch {
	case p.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return appraisalHigh
	case p.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return appraisalMid
	case p.GreaterThanOrEqual(decimal.NewFromInt(65)):
		return appraisalLow
	default:
		return decimal.Zero
	}
}

func FacultyAppraisalPoints(a FacultyAppraisal) decimal.Decimal {
	return percentageThreshold(a.AppraisalPercentage)
}

func SubjectResultPoints(r SubjectResult) decimal.Decimal {
	return percentageThreshold(r.PassPercentage)
}

// IndustryAttachmentPoints: 2 for eight weeks or more with industry, 1 for
// four, otherwise 0.
func IndustryAttachmentPoints(a IndustryAttachment) decimal.Decimal {
	weeks := clampNonNegative(a.DurationWeeks)
	switch {
	case weeks.GreaterThanOrEqual(decimal.NewFromInt(8)):
		return pointsTwo
	case weeks.GreaterThanOrEqual(decimal.NewFromInt(4)):
		return pointsOne
	default:
		return decimal.Zero
	}
}

// IndustryProjectPoints: flat 1 per project executed with industry.
func IndustryProjectPoints(IndustryProject) decimal.Decimal {
	return pointsOne
}

// PlacementPercentagePoints: tiered on the department's placement rate.
func PlacementPercentagePoints(p PlacementPercentage) decimal.Decimal {
	pct := clampNonNegative(p.Percentage)
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(85)):
		return decimal.NewFromInt(4)
	case pct.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return pointsTwo
	case pct.GreaterThanOrEqual(decimal.NewFromInt(65)):
		return pointsOne
	case pct.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return placementHalfPoint
	default:
		return decimal.Zero
	}
}

// PlacementAssistancePoints: 0.25 per student placed, at most 5 per record
// (per academic year).
func PlacementAssistancePoints(a PlacementAssistance) decimal.Decimal {
	placed := clampNonNegative(a.StudentsPlaced)
	return decimal.Min(pointsQuarter.Mul(placed), decimal.NewFromInt(5))
}

// StartupMentoringPoints: flat 5 per startup mentored, no aggregation cap.
func StartupMentoringPoints(StartupMentoring) decimal.Decimal {
	return decimal.NewFromInt(5)
}
