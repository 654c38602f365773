package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestGroundsOfMeritShape(t *testing.T) {
	grounds := GroundsOfMerit(9)
	require.Len(t, grounds, 3)

	for _, g := range grounds {
		assert.EqualValues(t, 9, g.CaseID)
		assert.NotEmpty(t, g.LegalBasis)
		assert.NotEmpty(t, g.AnalysisSummary)
	}

	assert.Equal(t, StrengthStrong, grounds[0].StrengthAssessment)
	assert.Equal(t, StrengthMedium, grounds[1].StrengthAssessment)
	assert.Equal(t, StrengthMedium, grounds[2].StrengthAssessment)
	assert.Equal(t, "Error in Law - Judicial Misdirection", grounds[0].GroundOfMerit)
	assert.Contains(t, grounds[0].NSWLawReferences, "Criminal Appeal Act 1912 (NSW)")
}

func TestComposeReportTitleAndSummary(t *testing.T) {
	fixedClock(t, time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC))

	c := &database.Case{CaseNumber: "2023/99", DefendantName: "John Citizen", OffenseType: "Murder"}
	c.ID = 4

	report := ComposeReport(c, GroundsOfMerit(4), "")

	assert.Equal(t, "Legal Opinion - Appeal Prospects: John Citizen - Case 2023/99", report.ReportTitle)
	assert.Contains(t, report.ExecutiveSummary, "John Citizen")
	assert.Contains(t, report.ExecutiveSummary, "Murder conviction")
	assert.Contains(t, report.ExecutiveSummary, "June 15, 2023")
	assert.Equal(t, DefaultGeneratedBy, report.GeneratedBy)
	assert.Equal(t, time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), report.GeneratedAt)
	assert.EqualValues(t, 4, report.CaseID)
}

func TestComposeReportGroundsNumbering(t *testing.T) {
	c := &database.Case{CaseNumber: "2023/100", DefendantName: "Jane Citizen"}
	report := ComposeReport(c, GroundsOfMerit(1), "analyst")

	lines := strings.Split(report.GroundsIdentified, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1. Error in Law - Judicial Misdirection (Strength: Strong)", lines[0])
	assert.Equal(t, "2. Fresh Evidence (Strength: Medium)", lines[1])
	assert.Equal(t, "3. Unreasonable Verdict (Strength: Medium)", lines[2])
	assert.Equal(t, "analyst", report.GeneratedBy)
}

func TestComposeReportSummarySeparatorAndNA(t *testing.T) {
	c := &database.Case{CaseNumber: "2023/101", DefendantName: "Sparse"}
	analyses := []database.LegalAnalysis{
		{GroundOfMerit: "First", StrengthAssessment: StrengthWeak},
		{GroundOfMerit: "Second", StrengthAssessment: StrengthWeak},
	}

	report := ComposeReport(c, analyses, "")
	assert.Equal(t, 1, strings.Count(report.LegalAnalysisSummary, "\n---\n"))
	assert.Contains(t, report.LegalAnalysisSummary, "NSW Law References: N/A")
	assert.Contains(t, report.LegalAnalysisSummary, "Supporting Evidence: N/A")
}

func TestRecommendationsTiers(t *testing.T) {
	strong := []database.LegalAnalysis{
		{StrengthAssessment: StrengthStrong},
		{StrengthAssessment: StrengthStrong},
		{StrengthAssessment: StrengthMedium},
	}
	assert.Contains(t, Recommendations(strong), "2 strong ground(s) of appeal identified")
	assert.Contains(t, Recommendations(strong), "proceed with the appeal")

	medium := []database.LegalAnalysis{
		{StrengthAssessment: StrengthMedium},
		{StrengthAssessment: StrengthWeak},
	}
	assert.Contains(t, Recommendations(medium), "1 medium strength ground(s) of appeal")
	assert.Contains(t, Recommendations(medium), "further investigation")

	weak := []database.LegalAnalysis{{StrengthAssessment: StrengthWeak}}
	assert.Contains(t, Recommendations(weak), "primarily weak grounds of appeal")
	assert.Contains(t, Recommendations(weak), "further groundwork is necessary")
}

func TestAutoTimelineEvent(t *testing.T) {
	uploadedAt := time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC)
	doc := &database.Document{
		CaseID:       3,
		Title:        "Trial Transcript Day 1",
		DocumentType: "transcript",
		UploadDate:   uploadedAt,
	}
	doc.ID = 12

	event := AutoTimelineEvent(doc)
	assert.EqualValues(t, 3, event.CaseID)
	require.NotNil(t, event.DocumentID)
	assert.EqualValues(t, 12, *event.DocumentID)
	assert.Equal(t, uploadedAt, event.EventDate)
	assert.Equal(t, "Document Upload", event.EventType)
	assert.Equal(t, "Document 'Trial Transcript Day 1' (transcript) was uploaded to the case", event.Description)
	assert.Equal(t, StrengthMedium, event.Significance)
	assert.Contains(t, event.RelevanceToAppeal, "transcript may contain relevant information")
}
