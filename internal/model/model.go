package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

type Account struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Counters is the numeric payload of one daily submission.
type Counters struct {
	TotalEnrollments int `json:"total_enrollments"`
	MTDLeads         int `json:"mtd_leads"`

	MSAzure900 int `json:"ms_azure_900"`
	SEOStarter int `json:"seo_starter"`
	SEOSMM     int `json:"seo_smm"`
	DMCrash    int `json:"dm_crash"`
	JobReady   int `json:"job_ready"`
	AzureCombo int `json:"azure_combo"`

	Recruitment  int `json:"recruitment"`
	CollegeDB    int `json:"college_db"`
	ClientDB     int `json:"client_db"`
	SchoolLeadDB int `json:"school_lead_db"`

	DailyLeadsGenerated int `json:"daily_leads_generated"`
	DailyLeadsContacted int `json:"daily_leads_contacted"`
	DailyProspects      int `json:"daily_prospects"`
	DailySuspects       int `json:"daily_suspects"`

	ApplicationsReceived int `json:"applications_received"`
	Interviewed          int `json:"interviewed"`
	OnHold               int `json:"on_hold"`
	Shortlisted          int `json:"shortlisted"`
	Rejected             int `json:"rejected"`

	SupportRequired string `json:"support_required"`
}

type ImportResult struct {
	Imported int    `json:"imported"`
	Error    string `json:"error,omitempty"`
}

// TeamReport is one post/category group on the analytics page.
type TeamReport struct {
	Post     string  `json:"post"`
	POC      *User   `json:"poc,omitempty"`
	Members  []User  `json:"members"`
	Entries  []Entry `json:"entries"`
	Target   int     `json:"target"`
	Achieved int     `json:"achieved"`
	Progress int     `json:"progress"`
}

type Metrics struct {
	TotalInterns     int `json:"total_interns"`
	TotalEnrollments int `json:"total_enrollments"`
	OverallProgress  int `json:"overall_progress"`
	SchoolLeadDB     int `json:"school_lead_db"`
}

// ChartData carries the flat arrays the analytics charts render from.
type ChartData struct {
	Labels       []string `json:"labels"`
	Targets      []int    `json:"targets"`
	Achievements []int    `json:"achievements"`
	Distribution []int    `json:"distribution"`
}

type Analytics struct {
	Teams   []TeamReport `json:"teams"`
	Metrics Metrics      `json:"metrics"`
	Chart   ChartData    `json:"chart"`
}
