package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// RootAdminUsername is the bootstrap account; it can never be deleted.
const RootAdminUsername = "admin"

type User struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	Username        string `gorm:"uniqueIndex;size:100" json:"username"`
	PasswordHash    string `gorm:"size:200" json:"-"`
	Role            string `gorm:"size:20" json:"role"`
	Name            string `gorm:"size:100" json:"name"`
	Email           string `gorm:"size:100" json:"email"`
	Post            string `gorm:"size:50" json:"post"`
	DOJ             string `gorm:"size:20" json:"doj"`
	ReferenceNumber string `gorm:"size:20" json:"reference_number"`
	IsPOC           bool   `gorm:"default:false" json:"is_poc"`
	POCName         string `gorm:"size:100" json:"poc_name"`
	TeamID          *int   `json:"team_id,omitempty"`

	Target         int `gorm:"default:0" json:"target"`
	TNDTotalTarget int `gorm:"default:50" json:"tnd_total_target"`

	MSAzure900Target int `gorm:"default:0" json:"ms_azure_900_target"`
	SEOStarterTarget int `gorm:"default:0" json:"seo_starter_target"`
	SEOSMMTarget     int `gorm:"default:0" json:"seo_smm_target"`
	DMCrashTarget    int `gorm:"default:0" json:"dm_crash_target"`
	JobReadyTarget   int `gorm:"default:0" json:"job_ready_target"`
	AzureComboTarget int `gorm:"default:0" json:"azure_combo_target"`

	RecruitmentTarget  int `gorm:"default:0" json:"recruitment_target"`
	CollegeDBTarget    int `gorm:"default:0" json:"college_db_target"`
	ClientDBTarget     int `gorm:"default:0" json:"client_db_target"`
	SchoolLeadDBTarget int `gorm:"default:0" json:"school_lead_db_target"`

	Entries []Entry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

// Entry is one dated activity record. The intern/post/poc columns are
// denormalized snapshots: later edits to the User must not rewrite history.
type Entry struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	UserID int    `gorm:"index" json:"user_id"`
	Date   string `gorm:"type:date;index" json:"date"`

	POC             string `gorm:"size:100" json:"poc"`
	InternName      string `gorm:"size:100" json:"intern_name"`
	Post            string `gorm:"size:50" json:"post"`
	Section         string `gorm:"size:50" json:"section"`
	DOJ             string `gorm:"size:20" json:"doj"`
	ReferenceNumber string `gorm:"size:20" json:"reference_number"`
	EmailID         string `gorm:"size:100" json:"email_id"`

	TotalEnrollments int `gorm:"default:0" json:"total_enrollments"`
	MTDLeads         int `gorm:"default:0" json:"mtd_leads"`

	MSAzure900 int `gorm:"default:0" json:"ms_azure_900"`
	SEOStarter int `gorm:"default:0" json:"seo_starter"`
	SEOSMM     int `gorm:"default:0" json:"seo_smm"`
	DMCrash    int `gorm:"default:0" json:"dm_crash"`
	JobReady   int `gorm:"default:0" json:"job_ready"`
	AzureCombo int `gorm:"default:0" json:"azure_combo"`

	Recruitment  int `gorm:"default:0" json:"recruitment"`
	CollegeDB    int `gorm:"default:0" json:"college_db"`
	ClientDB     int `gorm:"default:0" json:"client_db"`
	SchoolLeadDB int `gorm:"default:0" json:"school_lead_db"`

	DailyLeadsGenerated int `gorm:"default:0" json:"daily_leads_generated"`
	DailyLeadsContacted int `gorm:"default:0" json:"daily_leads_contacted"`
	DailyProspects      int `gorm:"default:0" json:"daily_prospects"`
	DailySuspects       int `gorm:"default:0" json:"daily_suspects"`

	ApplicationsReceived int `gorm:"default:0" json:"applications_received"`
	Interviewed          int `gorm:"default:0" json:"interviewed"`
	OnHold               int `gorm:"default:0" json:"on_hold"`
	Shortlisted          int `gorm:"default:0" json:"shortlisted"`
	Rejected             int `gorm:"default:0" json:"rejected"`

	SupportRequired string `gorm:"type:text" json:"support_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Team struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;size:100" json:"name"`
	POCID  *int   `json:"poc_id,omitempty"`
	Target int    `gorm:"default:0" json:"target"`
}

func (User) TableName() string  { return "users" }
func (Entry) TableName() string { return "entries" }
func (Team) TableName() string  { return "teams" }
