// Package analysis holds the grounds-of-merit generator and the barrister
// report composer.
//
// PLACEHOLDER IMPLEMENTATION: the generator returns a fixed set of sample
// analyses. A future version is meant to analyse the extracted text of the
// case documents instead; until then the canned content below is the
// contract and must not change.
package analysis

import (
	"time"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

// Strength assessment tiers used by the report composer.
const (
	StrengthStrong = "Strong"
	StrengthMedium = "Medium"
	StrengthWeak   = "Weak"
)

// GroundsOfMerit returns the sample legal analyses for a case. Every
// invocation produces the same three grounds: one Strong, two Medium.
func GroundsOfMerit(caseID uint) []database.LegalAnalysis {
	return []database.LegalAnalysis{
		{
			CaseID:               caseID,
			GroundOfMerit:        "Error in Law - Judicial Misdirection",
			LegalBasis:           "The trial judge misdirected the jury on a material element of the offense, leading to a miscarriage of justice.",
			StrengthAssessment:   StrengthStrong,
			NSWLawReferences:     "Criminal Appeal Act 1912 (NSW) s 6(1); Crimes (Appeal and Review) Act 2001 (NSW) s 53",
			FederalLawReferences: "None applicable",
			SupportingEvidence:   "Trial transcript pages 45-48 showing erroneous jury directions",
			AnalysisSummary:      "Strong ground based on clear judicial error in directing the jury on the element of intent. NSW Court of Criminal Appeal has consistently held that such misdirections constitute a material irregularity.",
		},
		{
			CaseID:               caseID,
			GroundOfMerit:        "Fresh Evidence",
			LegalBasis:           "New evidence has come to light that was not available at trial and could reasonably affect the outcome.",
			StrengthAssessment:   StrengthMedium,
			NSWLawReferences:     "Criminal Appeal Act 1912 (NSW) s 12; Crimes (Appeal and Review) Act 2001 (NSW) s 54",
			FederalLawReferences: "Evidence Act 1995 (Cth) s 97, s 101",
			SupportingEvidence:   "Witness statement dated after trial conclusion; forensic analysis report",
			AnalysisSummary:      "Medium strength ground. The fresh evidence meets the threshold of credibility but requires demonstration that it could not have been discovered with reasonable diligence at trial.",
		},
		{
			CaseID:               caseID,
			GroundOfMerit:        "Unreasonable Verdict",
			LegalBasis:           "The verdict is unreasonable or cannot be supported having regard to the evidence presented at trial.",
			StrengthAssessment:   StrengthMedium,
			NSWLawReferences:     "Criminal Appeal Act 1912 (NSW) s 6(1); Crimes (Appeal and Review) Act 2001 (NSW) s 53(1)(a)",
			FederalLawReferences: "None applicable",
			SupportingEvidence:   "Contradictory witness testimony; lack of corroborating evidence",
			AnalysisSummary:      "Medium strength ground. Requires detailed analysis of the trial record to demonstrate that no reasonable jury, properly instructed, could have reached the guilty verdict on the evidence presented.",
		},
	}
}

// AutoTimelineEvent builds the timeline entry recorded when a document is
// uploaded to a case.
func AutoTimelineEvent(doc *database.Document) database.TimelineEvent {
	docID := doc.ID
	return database.TimelineEvent{
		CaseID:            doc.CaseID,
		DocumentID:        &docID,
		EventDate:         doc.UploadDate,
		EventType:         "Document Upload",
		Description:       "Document '" + doc.Title + "' (" + doc.DocumentType + ") was uploaded to the case",
		Significance:      StrengthMedium,
		RelevanceToAppeal: "This " + doc.DocumentType + " may contain relevant information for the appeal",
	}
}

// now is overridable in tests.
var now = func() time.Time { return time.Now().UTC() }
