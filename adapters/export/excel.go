// Package export writes analysis runs to Excel workbooks for distribution
// outside the dashboard.
package export

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"provnet/domain/provider"
	"provnet/internal/analysis"
	apperrors "provnet/internal/errors"
	"provnet/ports"
)

// excelExporter implements the RosterExporter interface
type excelExporter struct{}

// NewExcelExporter creates a workbook exporter
func NewExcelExporter() ports.RosterExporter {
	return &excelExporter{}
}

var rosterHeader = []interface{}{
	"Provider ID", "Name", "Network Status", "Clinical Group", "Operating States",
	"Primary CBSA", "Quality Score", "Cost Per Utilizer", "Utilizers",
	"Termination Value", "Adequacy Risk",
}

var candidateHeader = []interface{}{
	"Provider ID", "Name", "Quadrant", "Quality Score", "Cost Per Utilizer",
	"Utilizers", "Termination Value", "Adequacy Risk",
}

// ExportWorkbook writes the roster, quadrant assignments, and candidate
// lists to an xlsx workbook at path.
func (e *excelExporter) ExportWorkbook(ctx context.Context, path string, roster []provider.Record, classified []analysis.Classified, removals, additions []analysis.Classified) error {
	startTime := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeRosterSheet(f, "Roster", roster); err != nil {
		return apperrors.ExportError("failed to write roster sheet", err)
	}
	if err := e.writeCandidateSheet(f, "Quadrants", classified); err != nil {
		return apperrors.ExportError("failed to write quadrant sheet", err)
	}
	if err := e.writeCandidateSheet(f, "Removal Candidates", removals); err != nil {
		return apperrors.ExportError("failed to write removal sheet", err)
	}
	if err := e.writeCandidateSheet(f, "Addition Candidates", additions); err != nil {
		return apperrors.ExportError("failed to write addition sheet", err)
	}

	// The default sheet excelize creates is replaced by our own.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.ExportError("failed to remove default sheet", err)
	}

	if err := ctx.Err(); err != nil {
		return apperrors.ExportError("export cancelled", err)
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.ExportError(fmt.Sprintf("failed to save workbook to %s", path), err)
	}

	log.Printf("[ExcelExporter] Workbook written to %s in %.2fms", path, float64(time.Since(startTime).Nanoseconds())/1e6)
	return nil
}

func (e *excelExporter) writeRosterSheet(f *excelize.File, sheet string, roster []provider.Record) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &rosterHeader); err != nil {
		return err
	}
	for i, r := range roster {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ProviderID.String(), r.Name, string(r.NetworkStatus), r.ClinicalGroup,
			strings.Join(r.OperatingStates, ", "), r.PrimaryCBSA,
			r.QualityScore, r.CostPerUtilizer, r.Utilizers,
			r.TerminationValue, string(r.AdequacyRisk),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *excelExporter) writeCandidateSheet(f *excelize.File, sheet string, rows []analysis.Classified) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &candidateHeader); err != nil {
		return err
	}
	for i, c := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			c.ProviderID.String(), c.Name, string(c.Quadrant),
			c.QualityScore, c.CostPerUtilizer, c.Utilizers,
			c.TerminationValue, string(c.AdequacyRisk),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
