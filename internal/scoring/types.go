package scoring

// Activity records carry the raw attributes entered by faculty plus a
// derived calculated_points field. The engine fills calculated_points on
// every scoring pass; values arriving from clients are overwritten, never
// trusted.

type InvestigatorRole string

const (
	RolePI   InvestigatorRole = "PI"
	RoleCoPI InvestigatorRole = "Co-PI"
)

type Investigator struct {
	Name string           `json:"name"`
	Role InvestigatorRole `json:"role"`
}

type PatentStatus string

const (
	PatentFiled     PatentStatus = "filed"
	PatentPublished PatentStatus = "published"
	PatentGranted   PatentStatus = "granted"
)

type InventorRole string

const (
	RolePrincipalInventor InventorRole = "Principal"
	RoleCoInventor        InventorRole = "Co-inventor"
)

type Inventor struct {
	Name string       `json:"name"`
	Role InventorRole `json:"role"`
}

type ScholarStatus string

const (
	ScholarPursuing  ScholarStatus = "pursuing"
	ScholarSubmitted ScholarStatus = "submitted"
	ScholarAwarded   ScholarStatus = "awarded"
)

type SupervisorRole string

const (
	RoleMainGuide SupervisorRole = "Main Guide"
	RoleCoGuide   SupervisorRole = "Co-Guide"
)

type Supervisor struct {
	Name string         `json:"name"`
	Role SupervisorRole `json:"role"`
}

type AuthorRole string

const (
	RoleFirstAuthor AuthorRole = "First Author"
	RoleCoAuthor    AuthorRole = "Co-Author"
)

type Author struct {
	Name string     `json:"name"`
	Role AuthorRole `json:"role"`
}

type Indexing string

const (
	IndexSCI          Indexing = "SCI"
	IndexScopus       Indexing = "Scopus"
	IndexWebOfScience Indexing = "Web of Science"
	IndexOther        Indexing = "Other"
)

type WorkshopRole string

const (
	WorkshopCoordinator    WorkshopRole = "Coordinator"
	WorkshopConvener       WorkshopRole = "Convener"
	WorkshopResourcePerson WorkshopRole = "Resource Person"
	WorkshopParticipant    WorkshopRole = "Participant"
)

type BookLevel string

const (
	BookInternational BookLevel = "International"
	BookNational      BookLevel = "National"
)

// --- Research section records ---

type SponsoredProject struct {
	Title            string         `json:"title"`
	FundingAgency    string         `json:"funding_agency"`
	FundingAmount    float64        `json:"funding_amount"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	Status           string         `json:"status"` // ongoing|completed
	Investigators    []Investigator `json:"investigators"`
	CalculatedPoints float64        `json:"calculated_points"`
}

type Patent struct {
	Title             string       `json:"title"`
	ApplicationNumber string       `json:"application_number"`
	FilingDate        string       `json:"filing_date"`
	Status            PatentStatus `json:"status"`
	Inventors         []Inventor   `json:"inventors"`
	CalculatedPoints  float64      `json:"calculated_points"`
}

type ConsultancyProject struct {
	Title            string  `json:"title"`
	Client           string  `json:"client"`
	Amount           float64 `json:"amount"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type PhDScholar struct {
	Name             string        `json:"name"`
	Title            string        `json:"title"`
	Status           ScholarStatus `json:"status"`
	StartDate        string        `json:"start_date"`
	CompletionDate   string        `json:"completion_date,omitempty"`
	Supervisors      []Supervisor  `json:"supervisors"`
	CalculatedPoints float64       `json:"calculated_points"`
}

type JournalPaper struct {
	Title            string   `json:"title"`
	Journal          string   `json:"journal"`
	Indexing         Indexing `json:"indexing"`
	PublicationDate  string   `json:"publication_date"`
	Authors          []Author `json:"authors"`
	CalculatedPoints float64  `json:"calculated_points"`
}

type ConferencePaper struct {
	Title            string   `json:"title"`
	Conference       string   `json:"conference"`
	Indexing         Indexing `json:"indexing"`
	PresentationDate string   `json:"presentation_date"`
	Authors          []Author `json:"authors"`
	CalculatedPoints float64  `json:"calculated_points"`
}

type ConferenceOrganized struct {
	Title            string  `json:"title"`
	Venue            string  `json:"venue"`
	Date             string  `json:"date"`
	Role             string  `json:"role"` // Chairman|Secretary|Convenor|Session Chair|Session Co-Chair
	CalculatedPoints float64 `json:"calculated_points"`
}

// --- Administration section records ---

type AdministrativeRole struct {
	Role             string  `json:"role"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type CommitteeRole struct {
	Committee        string  `json:"committee"`
	Role             string  `json:"role"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type DepartmentalActivity struct {
	Activity         string  `json:"activity"`
	Role             string  `json:"role"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

// --- Academics section records ---

type Workshop struct {
	Title            string       `json:"title"`
	Venue            string       `json:"venue"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"`
	Role             WorkshopRole `json:"role"`
	CalculatedPoints float64      `json:"calculated_points"`
}

type Certification struct {
	Title            string  `json:"title"`
	Platform         string  `json:"platform"`
	CompletionDate   string  `json:"completion_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type NewLab struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	EstablishmentDate string  `json:"establishment_date"`
	CalculatedPoints  float64 `json:"calculated_points"`
}

type PGDissertation struct {
	Title            string  `json:"title"`
	StudentName      string  `json:"student_name"`
	CompletionDate   string  `json:"completion_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type UGProject struct {
	Title            string   `json:"title"`
	StudentNames     []string `json:"student_names"`
	CompletionDate   string   `json:"completion_date"`
	CalculatedPoints float64  `json:"calculated_points"`
}

type BookPublished struct {
	Title            string    `json:"title"`
	Publisher        string    `json:"publisher"`
	PublishDate      string    `json:"publish_date"`
	ISBN             string    `json:"isbn"`
	Level            BookLevel `json:"level"`
	CalculatedPoints float64   `json:"calculated_points"`
}

type FacultyAppraisal struct {
	Subject             string  `json:"subject"`
	Semester            string  `json:"semester"`
	AcademicYear        string  `json:"academic_year"`
	AppraisalPercentage float64 `json:"appraisal_percentage"`
	CalculatedPoints    float64 `json:"calculated_points"`
}

type SubjectResult struct {
	Subject          string  `json:"subject"`
	Semester         string  `json:"semester"`
	AcademicYear     string  `json:"academic_year"`
	PassPercentage   float64 `json:"pass_percentage"`
	CalculatedPoints float64 `json:"calculated_points"`
}

// --- Industry interaction section records ---

type IndustryAttachment struct {
	Company          string  `json:"company"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	DurationWeeks    float64 `json:"duration_weeks"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type IndustryProject struct {
	Title            string  `json:"title"`
	Company          string  `json:"company"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CalculatedPoints float64 `json:"calculated_points"`
}

// --- Placement activities section records ---

type PlacementPercentage struct {
	AcademicYear     string  `json:"academic_year"`
	Percentage       float64 `json:"percentage"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type PlacementAssistance struct {
	AcademicYear     string  `json:"academic_year"`
	StudentsPlaced   float64 `json:"students_placed"`
	CalculatedPoints float64 `json:"calculated_points"`
}

type StartupMentoring struct {
	StartupName      string   `json:"startup_name"`
	StudentNames     []string `json:"student_names"`
	StartDate        string   `json:"start_date"`
	Description      string   `json:"description"`
	CalculatedPoints float64  `json:"calculated_points"`
}

// --- Sections ---

type ResearchSection struct {
	SponsoredProjects    []SponsoredProject    `json:"sponsored_projects"`
	Patents              []Patent              `json:"patents"`
	ConsultancyProjects  []ConsultancyProject  `json:"consultancy_projects"`
	PhDScholars          []PhDScholar          `json:"phd_scholars"`
	JournalPapers        []JournalPaper        `json:"journal_papers"`
	ConferencePapers     []ConferencePaper     `json:"conference_papers"`
	ConferencesOrganized []ConferenceOrganized `json:"conferences_organized"`
	TotalPoints          float64               `json:"total_points"`
}

type AdministrationSection struct {
	AdministrativeRoles    []AdministrativeRole   `json:"administrative_roles"`
	CommitteeRoles         []CommitteeRole        `json:"committee_roles"`
	DepartmentalActivities []DepartmentalActivity `json:"departmental_activities"`
	TotalPoints            float64                `json:"total_points"`
}

type AcademicsSection struct {
	Workshops        []Workshop         `json:"workshops"`
	Certifications   []Certification    `json:"certifications"`
	NewLabs          []NewLab           `json:"new_labs"`
	PGDissertations  []PGDissertation   `json:"pg_dissertations"`
	UGProjects       []UGProject        `json:"ug_projects"`
	BooksPublished   []BookPublished    `json:"books_published"`
	FacultyAppraisal []FacultyAppraisal `json:"faculty_appraisal"`
	SubjectResults   []SubjectResult    `json:"subject_results"`
	TotalPoints      float64            `json:"total_points"`
}

type IndustryInteractionSection struct {
	IndustryAttachments []IndustryAttachment `json:"industry_attachments"`
	IndustryProjects    []IndustryProject    `json:"industry_projects"`
	TotalPoints         float64              `json:"total_points"`
}

type PlacementActivitiesSection struct {
	PlacementPercentage []PlacementPercentage `json:"placement_percentage"`
	PlacementAssistance []PlacementAssistance `json:"placement_assistance"`
	StartupMentoring    []StartupMentoring    `json:"startup_mentoring"`
	TotalPoints         float64               `json:"total_points"`
}
