package database

import (
	"time"
)

type Case struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CaseNumber    string    `json:"case_number" gorm:"size:100;uniqueIndex;not null"`
	DefendantName string    `json:"defendant_name" gorm:"size:200;not null"`
	OffenseType   string    `json:"offense_type" gorm:"size:200;not null;default:Murder"`
	Court         string    `json:"court" gorm:"size:200;not null;default:NSW Supreme Court"`
	Status        string    `json:"status" gorm:"size:50;not null;default:Open"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Documents        []Document        `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
	TimelineEvents   []TimelineEvent   `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
	LegalAnalyses    []LegalAnalysis   `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
	BarristerReports []BarristerReport `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

type Document struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CaseID        uint      `json:"case_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	DocumentType  string    `json:"document_type" gorm:"size:100;not null"`
	FilePath      string    `json:"file_path" gorm:"size:500;not null"`
	FileType      string    `json:"file_type" gorm:"size:10;not null"`
	FileSize      int64     `json:"file_size" gorm:"not null"`
	ExtractedText string    `json:"extracted_text" gorm:"type:text"`
	UploadDate    time.Time `json:"upload_date"`

	TimelineEvents []TimelineEvent `json:"-" gorm:"foreignKey:DocumentID;constraint:OnDelete:SET NULL"`
}

type TimelineEvent struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CaseID            uint      `json:"case_id" gorm:"index;not null"`
	DocumentID        *uint     `json:"document_id"`
	EventDate         time.Time `json:"event_date" gorm:"index;not null"`
	EventType         string    `json:"event_type" gorm:"size:100;not null"`
	Description       string    `json:"description" gorm:"type:text;not null"`
	Significance      string    `json:"significance" gorm:"size:50;not null;default:Medium"`
	RelevanceToAppeal string    `json:"relevance_to_appeal" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
}

type LegalAnalysis struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	CaseID               uint      `json:"case_id" gorm:"index;not null"`
	GroundOfMerit        string    `json:"ground_of_merit" gorm:"size:255;not null"`
	LegalBasis           string    `json:"legal_basis" gorm:"type:text;not null"`
	StrengthAssessment   string    `json:"strength_assessment" gorm:"size:50;not null"`
	NSWLawReferences     string    `json:"nsw_law_references" gorm:"type:text"`
	FederalLawReferences string    `json:"federal_law_references" gorm:"type:text"`
	SupportingEvidence   string    `json:"supporting_evidence" gorm:"type:text"`
	AnalysisSummary      string    `json:"analysis_summary" gorm:"type:text;not null"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BarristerReport struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	CaseID               uint      `json:"case_id" gorm:"index;not null"`
	ReportTitle          string    `json:"report_title" gorm:"size:255;not null"`
	ExecutiveSummary     string    `json:"executive_summary" gorm:"type:text;not null"`
	GroundsIdentified    string    `json:"grounds_identified" gorm:"type:text;not null"`
	LegalAnalysisSummary string    `json:"legal_analysis_summary" gorm:"type:text;not null"`
	Recommendations      string    `json:"recommendations" gorm:"type:text;not null"`
	GeneratedAt          time.Time `json:"generated_at"`
	GeneratedBy          string    `json:"generated_by" gorm:"size:200;not null"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:50;not null;default:user"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Case) TableName() string {
	return "cases"
}

func (Document) TableName() string {
	return "documents"
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}

func (LegalAnalysis) TableName() string {
	return "legal_analyses"
}

func (BarristerReport) TableName() string {
	return "barrister_reports"
}

func (User) TableName() string {
	return "users"
}
