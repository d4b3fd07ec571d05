package service

import (
	"context"
	"fmt"
	"time"

	"AIV_training_backend/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet      = "Signups"
	exportDateLayout = "Jan 2, 2006 3:04 PM"
)

// Export serializes the full, unfiltered signup list into an xlsx workbook.
// The filename carries the current ISO date, e.g. signups_2026-03-01.xlsx.
func (s *DashboardService) Export(ctx context.Context) (string, []byte, error) {
	signups, err := s.repo.ListSignups(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get signups: %w", err)
	}

	f, err := BuildWorkbook(signups)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("signups_%s.xlsx", time.Now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

func BuildWorkbook(signups []*model.Signup) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := []interface{}{"#", "Full Name", "Email", "Referral Code", "Signed Up"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, s := range signups {
		row := []interface{}{
			i + 1,
			stringOrEmpty(s.FullName),
			s.Email,
			stringOrEmpty(s.ReferralCode),
			s.CreatedAt.Local().Format(exportDateLayout),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
