package scoring

import "testing"

func certs(n int) []Certification {
	out := make([]Certification, n)
	for i := range out {
		out[i] = Certification{Title: "NPTEL course", Platform: "NPTEL"}
	}
	return out
}

func TestCategoryCapEnforcement(t *testing.T) {
	// Three certifications stay under the cap of 5.
	sec := AcademicsSection{Certifications: certs(3)}
	ScoreAcademics(&sec)
	if sec.TotalPoints != 1.5 {
		t.Fatalf("3 certifications: got %v, want 1.5", sec.TotalPoints)
	}
	// Eleven would be 5.5 uncapped; the subtotal clips at exactly 5.
	sec = AcademicsSection{Certifications: certs(11)}
	ScoreAcademics(&sec)
	if sec.TotalPoints != 5 {
		t.Fatalf("11 certifications: got %v, want 5", sec.TotalPoints)
	}
}

func TestWorkshopRoleSubCaps(t *testing.T) {
	var sec AcademicsSection
	for i := 0; i < 8; i++ {
		sec.Workshops = append(sec.Workshops, Workshop{Role: WorkshopParticipant})
	}
	for i := 0; i < 12; i++ {
		sec.Workshops = append(sec.Workshops, Workshop{Role: WorkshopResourcePerson})
	}
	ScoreAcademics(&sec)
	// Participant entries: 8*0.5=4 capped at 3. Organizer entries:
	// 12*0.5=6 capped at 5.
	if sec.TotalPoints != 8 {
		t.Fatalf("got %v, want 8", sec.TotalPoints)
	}
}

func TestBookLevelSubCaps(t *testing.T) {
	var sec AcademicsSection
	for i := 0; i < 4; i++ {
		sec.BooksPublished = append(sec.BooksPublished, BookPublished{Level: BookInternational})
	}
	for i := 0; i < 3; i++ {
		sec.BooksPublished = append(sec.BooksPublished, BookPublished{Level: BookNational})
	}
	ScoreAcademics(&sec)
	// International 12 -> 9, national 6 -> 4.
	if sec.TotalPoints != 13 {
		t.Fatalf("got %v, want 13", sec.TotalPoints)
	}
}

func TestPhDScholarPursuingCap(t *testing.T) {
	var sec ResearchSection
	for i := 0; i < 7; i++ {
		sec.PhDScholars = append(sec.PhDScholars, PhDScholar{
			Status:      ScholarPursuing,
			Supervisors: []Supervisor{{Name: "G", Role: RoleMainGuide}},
		})
	}
	sec.PhDScholars = append(sec.PhDScholars, PhDScholar{
		Status:      ScholarAwarded,
		Supervisors: []Supervisor{{Name: "G", Role: RoleMainGuide}},
	})
	ScoreResearch(&sec)
	// Pursuing: 7*2=14 capped at 10. Awarded: 10, uncapped.
	if sec.TotalPoints != 20 {
		t.Fatalf("got %v, want 20", sec.TotalPoints)
	}
}

func TestConsultancyCapAppliedAtAggregation(t *testing.T) {
	sec := ResearchSection{ConsultancyProjects: []ConsultancyProject{
		{Amount: 800000},
		{Amount: 700000},
	}}
	ScoreResearch(&sec)
	// Records carry 8 and 7 individually; the category subtotal clips at 10.
	if sec.ConsultancyProjects[0].CalculatedPoints != 8 {
		t.Fatalf("record 0: got %v, want 8", sec.ConsultancyProjects[0].CalculatedPoints)
	}
	if sec.TotalPoints != 10 {
		t.Fatalf("subtotal: got %v, want 10", sec.TotalPoints)
	}
}

func TestScoringIsIdempotent(t *testing.T) {
	sec := researchFixture()
	ScoreResearch(&sec)
	first := sec.TotalPoints
	ScoreResearch(&sec)
	if sec.TotalPoints != first {
		t.Fatalf("second pass drifted: %v -> %v", first, sec.TotalPoints)
	}
}

func TestScoringIsOrderIndependent(t *testing.T) {
	a := researchFixture()
	b := researchFixture()
	// Reverse every category list in b.
	for i, j := 0, len(b.JournalPapers)-1; i < j; i, j = i+1, j-1 {
		b.JournalPapers[i], b.JournalPapers[j] = b.JournalPapers[j], b.JournalPapers[i]
	}
	for i, j := 0, len(b.ConsultancyProjects)-1; i < j; i, j = i+1, j-1 {
		b.ConsultancyProjects[i], b.ConsultancyProjects[j] = b.ConsultancyProjects[j], b.ConsultancyProjects[i]
	}
	ScoreResearch(&a)
	ScoreResearch(&b)
	if a.TotalPoints != b.TotalPoints {
		t.Fatalf("permuted records changed total: %v vs %v", a.TotalPoints, b.TotalPoints)
	}
}

func TestClientSuppliedPointsOverwritten(t *testing.T) {
	sec := ResearchSection{
		Patents: []Patent{{
			Status:           PatentFiled,
			Inventors:        []Inventor{{Name: "A", Role: RolePrincipalInventor}},
			CalculatedPoints: 999, // spoofed by the client
		}},
		TotalPoints: 999,
	}
	ScoreResearch(&sec)
	if sec.Patents[0].CalculatedPoints != 0 {
		t.Fatalf("spoofed record points survived: %v", sec.Patents[0].CalculatedPoints)
	}
	if sec.TotalPoints != 0 {
		t.Fatalf("spoofed total survived: %v", sec.TotalPoints)
	}
}

func TestGrandTotalEndToEnd(t *testing.T) {
	research := ResearchSection{
		SponsoredProjects: []SponsoredProject{{
			Title:         "Smart grid pilot",
			FundingAmount: 2500000,
			Investigators: []Investigator{{Name: "Dr. A", Role: RolePI}},
		}},
	}
	academics := AcademicsSection{Certifications: certs(3)}
	placement := PlacementActivitiesSection{
		PlacementPercentage: []PlacementPercentage{{AcademicYear: "2023-24", Percentage: 85}},
	}
	var admin AdministrationSection
	var industry IndustryInteractionSection

	ScoreResearch(&research)
	if research.SponsoredProjects[0].CalculatedPoints != 10 {
		t.Fatalf("sponsored project: got %v, want 10", research.SponsoredProjects[0].CalculatedPoints)
	}
	if research.TotalPoints != 10 {
		t.Fatalf("research total: got %v, want 10", research.TotalPoints)
	}

	got := GrandTotal(research, admin, academics, industry, placement)
	// 10 (research) + 1.5 (certifications) + 4 (placement tier).
	if got != 15.5 {
		t.Fatalf("grand total: got %v, want 15.5", got)
	}
}

func TestGrandTotalIgnoresStaleTotals(t *testing.T) {
	research := ResearchSection{TotalPoints: 500}
	var admin AdministrationSection
	var academics AcademicsSection
	var industry IndustryInteractionSection
	var placement PlacementActivitiesSection
	if got := GrandTotal(research, admin, academics, industry, placement); got != 0 {
		t.Fatalf("stale section total leaked into grand total: %v", got)
	}
}

func researchFixture() ResearchSection {
	return ResearchSection{
		SponsoredProjects: []SponsoredProject{
			{FundingAmount: 600000, Investigators: []Investigator{{Name: "A", Role: RolePI}}},
		},
		ConsultancyProjects: []ConsultancyProject{
			{Amount: 300000},
			{Amount: 450000},
			{Amount: 125000},
		},
		JournalPapers: []JournalPaper{
			{Indexing: IndexSCI, Authors: []Author{{Name: "A", Role: RoleFirstAuthor}}},
			{Indexing: IndexScopus, Authors: []Author{{Name: "A", Role: RoleFirstAuthor}, {Name: "B", Role: RoleCoAuthor}}},
			{Indexing: IndexOther, Authors: []Author{{Name: "A", Role: RoleCoAuthor}}},
		},
		ConferencesOrganized: []ConferenceOrganized{
			{Title: "ICACC"}, {Title: "NCETA"}, {Title: "Workshop week"}, {Title: "Extra"},
		},
	}
}
