package scoring

import "github.com/shopspring/decimal"

// Aggregation: per category, sum the per-record points, clip at the
// category cap where one is defined, then add the capped subtotals into the
// section total. Every pass recomputes from the raw records, so scoring is
// idempotent and insensitive to record order.

func capAt(sum decimal.Decimal, cap int64) decimal.Decimal {
	return decimal.Min(sum, decimal.NewFromInt(cap))
}

// ScoreResearch annotates every research record with its point value and
// sets the section total.
func ScoreResearch(sec *ResearchSection) {
	sec.TotalPoints = scoreResearch(sec).InexactFloat64()
}

func scoreResearch(sec *ResearchSection) decimal.Decimal {
	total := decimal.Zero

	sum := decimal.Zero
	for i := range sec.SponsoredProjects {
		d := SponsoredProjectPoints(sec.SponsoredProjects[i])
		sec.SponsoredProjects[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(sum)

	sum = decimal.Zero
	for i := range sec.Patents {
		d := PatentPoints(sec.Patents[i])
		sec.Patents[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(sum)

	sum = decimal.Zero
	for i := range sec.ConsultancyProjects {
		d := ConsultancyPoints(sec.ConsultancyProjects[i])
		sec.ConsultancyProjects[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 10))

	// Pursuing scholars are capped at 10 as a group; awarded and submitted
	// scholars count in full.
	pursuing, completed := decimal.Zero, decimal.Zero
	for i := range sec.PhDScholars {
		d := PhDScholarPoints(sec.PhDScholars[i])
		sec.PhDScholars[i].CalculatedPoints = d.InexactFloat64()
		if sec.PhDScholars[i].Status == ScholarPursuing {
			pursuing = pursuing.Add(d)
		} else {
			completed = completed.Add(d)
		}
	}
	total = total.Add(completed).Add(capAt(pursuing, 10))

	sum = decimal.Zero
	for i := range sec.JournalPapers {
		d := JournalPaperPoints(sec.JournalPapers[i])
		sec.JournalPapers[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 10))

	sum = decimal.Zero
	for i := range sec.ConferencePapers {
		d := ConferencePaperPoints(sec.ConferencePapers[i])
		sec.ConferencePapers[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 10))

	sum = decimal.Zero
	for i := range sec.ConferencesOrganized {
		d := ConferenceOrganizedPoints(sec.ConferencesOrganized[i])
		sec.ConferencesOrganized[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 3))

	return total
}

// ScoreAdministration annotates administration records and sets the
// section total.
func ScoreAdministration(sec *AdministrationSection) {
	sec.TotalPoints = scoreAdministration(sec).InexactFloat64()
}

func scoreAdministration(sec *AdministrationSection) decimal.Decimal {
	total := decimal.Zero

	sum := decimal.Zero
	for i := range sec.AdministrativeRoles {
		d := AdministrativeRolePoints(sec.AdministrativeRoles[i])
		sec.AdministrativeRoles[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 6))

	sum = decimal.Zero
	for i := range sec.CommitteeRoles {
		d := CommitteeRolePoints(sec.CommitteeRoles[i])
		sec.CommitteeRoles[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 5))

	sum = decimal.Zero
	for i := range sec.DepartmentalActivities {
		d := DepartmentalActivityPoints(sec.DepartmentalActivities[i])
		sec.DepartmentalActivities[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 5))

	return total
}

// ScoreAcademics annotates academics records and sets the section total.
func ScoreAcademics(sec *AcademicsSection) {
	sec.TotalPoints = scoreAcademics(sec).InexactFloat64()
}

func scoreAcademics(sec *AcademicsSection) decimal.Decimal {
	total := decimal.Zero

	// Workshops split by role: participation caps at 3, organizing or
	// serving as resource person caps at 5.
	participant, organizer := decimal.Zero, decimal.Zero
	for i := range sec.Workshops {
		d := WorkshopPoints(sec.Workshops[i])
		sec.Workshops[i].CalculatedPoints = d.InexactFloat64()
		if sec.Workshops[i].Role == WorkshopParticipant {
			participant = participant.Add(d)
		} else {
			organizer = organizer.Add(d)
		}
	}
	total = total.Add(capAt(organizer, 5)).Add(capAt(participant, 3))

	sum := decimal.Zero
	for i := range sec.Certifications {
		d := CertificationPoints(sec.Certifications[i])
		sec.Certifications[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 5))

	sum = decimal.Zero
	for i := range sec.NewLabs {
		d := NewLabPoints(sec.NewLabs[i])
		sec.NewLabs[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(sum) // no cap

	sum = decimal.Zero
	for i := range sec.PGDissertations {
		d := PGDissertationPoints(sec.PGDissertations[i])
		sec.PGDissertations[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 10))

	sum = decimal.Zero
	for i := range sec.UGProjects {
		d := UGProjectPoints(sec.UGProjects[i])
		sec.UGProjects[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 5))

	// Books: international and national titles cap separately.
	intl, natl := decimal.Zero, decimal.Zero
	for i := range sec.BooksPublished {
		d := BookPublishedPoints(sec.BooksPublished[i])
		sec.BooksPublished[i].CalculatedPoints = d.InexactFloat64()
		if sec.BooksPublished[i].Level == BookInternational {
			intl = intl.Add(d)
		} else {
			natl = natl.Add(d)
		}
	}
	total = total.Add(capAt(intl, 9)).Add(capAt(natl, 4))

	sum = decimal.Zero
	for i := range sec.FacultyAppraisal {
		d := FacultyAppraisalPoints(sec.FacultyAppraisal[i])
		sec.FacultyAppraisal[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 8))

	sum = decimal.Zero
	for i := range sec.SubjectResults {
		d := SubjectResultPoints(sec.SubjectResults[i])
		sec.SubjectResults[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 8))

	return total
}

// ScoreIndustryInteraction annotates industry records and sets the section
// total.
func ScoreIndustryInteraction(sec *IndustryInteractionSection) {
	sec.TotalPoints = scoreIndustryInteraction(sec).InexactFloat64()
}

func scoreIndustryInteraction(sec *IndustryInteractionSection) decimal.Decimal {
	total := decimal.Zero

	sum := decimal.Zero
	for i := range sec.IndustryAttachments {
		d := IndustryAttachmentPoints(sec.IndustryAttachments[i])
		sec.IndustryAttachments[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 6))

	sum = decimal.Zero
	for i := range sec.IndustryProjects {
		d := IndustryProjectPoints(sec.IndustryProjects[i])
		sec.IndustryProjects[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 6))

	return total
}

// ScorePlacementActivities annotates placement records and sets the
// section total.
func ScorePlacementActivities(sec *PlacementActivitiesSection) {
	sec.TotalPoints = scorePlacementActivities(sec).InexactFloat64()
}

func scorePlacementActivities(sec *PlacementActivitiesSection) decimal.Decimal {
	total := decimal.Zero

	sum := decimal.Zero
	for i := range sec.PlacementPercentage {
		d := PlacementPercentagePoints(sec.PlacementPercentage[i])
		sec.PlacementPercentage[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(capAt(sum, 20))

	// Placement assistance is already capped per record-year; startup
	// mentoring carries no cap at all.
	sum = decimal.Zero
	for i := range sec.PlacementAssistance {
		d := PlacementAssistancePoints(sec.PlacementAssistance[i])
		sec.PlacementAssistance[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(sum)

	sum = decimal.Zero
	for i := range sec.StartupMentoring {
		d := StartupMentoringPoints(sec.StartupMentoring[i])
		sec.StartupMentoring[i].CalculatedPoints = d.InexactFloat64()
		sum = sum.Add(d)
	}
	total = total.Add(sum)

	return total
}

// GrandTotal recomputes all five sections from their raw records and
// returns the unweighted sum of the section totals. The inputs are taken
// by value; stored calculated_points and total_points fields are ignored.
func GrandTotal(
	research ResearchSection,
	administration AdministrationSection,
	academics AcademicsSection,
	industry IndustryInteractionSection,
	placement PlacementActivitiesSection,
) float64 {
	total := scoreResearch(&research).
		Add(scoreAdministration(&administration)).
		Add(scoreAcademics(&academics)).
		Add(scoreIndustryInteraction(&industry)).
		Add(scorePlacementActivities(&placement))
	return total.InexactFloat64()
}
