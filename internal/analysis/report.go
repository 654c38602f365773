package analysis

import (
	"fmt"
	"strings"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

// DefaultGeneratedBy is recorded when no authenticated user requests the
// report.
const DefaultGeneratedBy = "AI Legal Analysis System"

// ComposeReport builds a barrister report for a case from its existing legal
// analyses. The recommendation paragraph is selected by strength tier:
// Strong grounds first, then Medium, otherwise the weak-grounds default.
// The analyses slice must be non-empty.
func ComposeReport(c *database.Case, analyses []database.LegalAnalysis, generatedBy string) database.BarristerReport {
	generatedAt := now()
	if generatedBy == "" {
		generatedBy = DefaultGeneratedBy
	}

	title := fmt.Sprintf("Legal Opinion - Appeal Prospects: %s - Case %s", c.DefendantName, c.CaseNumber)

	executiveSummary := fmt.Sprintf(
		"This report provides a comprehensive legal analysis of the appeal prospects for %s \n"+
			"in relation to the %s conviction. The analysis is based on review of all available case documents, \n"+
			"evidence, and applicable NSW and Federal legislation. The analysis was conducted on %s.",
		c.DefendantName, c.OffenseType, generatedAt.Format("January 02, 2006"))

	grounds := make([]string, 0, len(analyses))
	for i, a := range analyses {
		grounds = append(grounds, fmt.Sprintf("%d. %s (Strength: %s)", i+1, a.GroundOfMerit, a.StrengthAssessment))
	}

	summaries := make([]string, 0, len(analyses))
	for i, a := range analyses {
		summaries = append(summaries, fmt.Sprintf(
			"\nGround %d: %s\n\nLegal Basis: %s\n\nStrength Assessment: %s\n\nNSW Law References: %s\n\nFederal Law References: %s\n\nSupporting Evidence: %s\n",
			i+1, a.GroundOfMerit, a.LegalBasis, a.StrengthAssessment,
			orNA(a.NSWLawReferences), orNA(a.FederalLawReferences), orNA(a.SupportingEvidence)))
	}

	return database.BarristerReport{
		CaseID:               c.ID,
		ReportTitle:          title,
		ExecutiveSummary:     executiveSummary,
		GroundsIdentified:    strings.Join(grounds, "\n"),
		LegalAnalysisSummary: strings.Join(summaries, "\n---\n"),
		Recommendations:      Recommendations(analyses),
		GeneratedAt:          generatedAt,
		GeneratedBy:          generatedBy,
	}
}

// Recommendations selects the recommendation paragraph for a set of
// analyses grouped by strength tier.
func Recommendations(analyses []database.LegalAnalysis) string {
	var strong, medium int
	for _, a := range analyses {
		switch a.StrengthAssessment {
		case StrengthStrong:
			strong++
		case StrengthMedium:
			medium++
		}
	}

	switch {
	case strong > 0:
		return fmt.Sprintf(
			"Based on the analysis, there are %d strong ground(s) of appeal identified. \n"+
				"It is recommended to proceed with the appeal, focusing primarily on these strong grounds. \n"+
				"The case presents reasonable prospects of success. Immediate steps should include:\n\n"+
				"1. Prepare detailed written submissions on the strong grounds\n"+
				"2. Compile all supporting documentary evidence\n"+
				"3. Engage expert witnesses where necessary\n"+
				"4. Consider application for leave to appeal if required\n\n"+
				"The %d strong ground(s) provide a solid foundation for appellate review.",
			strong, strong)
	case medium > 0:
		return fmt.Sprintf(
			"The analysis has identified %d medium strength ground(s) of appeal. \n"+
				"While these grounds have merit, further investigation and evidence gathering is recommended \n"+
				"to strengthen the appeal prospects before proceeding. Recommended next steps:\n\n"+
				"1. Conduct additional factual investigation\n"+
				"2. Obtain expert opinions to strengthen the grounds\n"+
				"3. Research recent comparable case law\n"+
				"4. Review all trial transcripts for additional grounds\n\n"+
				"With additional work, these grounds could be strengthened to support a viable appeal.",
			medium)
	default:
		return "The current analysis shows primarily weak grounds of appeal. \n" +
			"It is recommended to:\n\n" +
			"1. Seek additional evidence or explore alternative legal strategies\n" +
			"2. Consider a comprehensive review of the entire trial record\n" +
			"3. Engage specialist appellate counsel for second opinion\n" +
			"4. Explore other post-conviction remedies if available\n\n" +
			"Before proceeding with a formal appeal, further groundwork is necessary."
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
