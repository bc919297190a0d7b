package application

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

// ReportService renders the downloadable seven-day wellness journal.
type ReportService struct {
	Moods    repository.MoodRepository
	Stresses repository.StressRepository
	Logger   *logrus.Logger
}

func NewReportService(moods repository.MoodRepository, stresses repository.StressRepository, logger *logrus.Logger) *ReportService {
	return &ReportService{Moods: moods, Stresses: stresses, Logger: logger}
}

// WellnessJournalPDF builds an A4 PDF of the user's mood logs and stress
// assessments from the last seven days.
func (s *ReportService) WellnessJournalPDF(ctx context.Context, userID string) ([]byte, error) {
	since := time.Now().AddDate(0, 0, -7)
	moods, err := s.Moods.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	stresses, err := s.Stresses.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Mental Health Journal | Tranquilify", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("Mon Jan 2 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 9, "Mood Logs", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(moods) == 0 {
		pdf.CellFormat(0, 6, "No mood data available in the last 7 days.", "", 1, "L", false, 0, "")
	} else {
		for _, m := range moods {
			line := fmt.Sprintf("- %s - Mood: %d", m.LoggedAt.Format("2006-01-02"), m.Mood)
			if m.Energy > 0 {
				line += fmt.Sprintf(", Energy: %d/5", m.Energy)
			}
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 9, "Stress Assessments", "", 1, "L", false, 0, "")
	if len(stresses) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, "No stress data available in the last 7 days.", "", 1, "L", false, 0, "")
	} else {
		for _, a := range stresses {
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 6, fmt.Sprintf("- %s - Stress Level: %d/4", a.CreatedAt.Format("2006-01-02"), a.StressLevel), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(120, 120, 120)
			if len(a.Symptoms) > 0 {
				pdf.CellFormat(0, 5, "    Symptoms: "+strings.Join(a.Symptoms, ", "), "", 1, "L", false, 0, "")
			}
			if len(a.StressFactors) > 0 {
				pdf.CellFormat(0, 5, "    Stress Factors: "+strings.Join(a.StressFactors, ", "), "", 1, "L", false, 0, "")
			}
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("pdf render failed")
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
