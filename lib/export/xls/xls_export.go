package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Candidate", "Contacts", "Job", "Company", "Applied at", "Stage", "Status", "Feedback"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the export file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Candidate"
		col := 1
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, item.Candidate.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Contacts"
		col++
		if item.Candidate != nil {
			contacts := fmt.Sprintf("%v\r%v", item.Candidate.Phone, item.Candidate.Email)
			if err := writeColumn(f, sheet, col, row, contacts); err != nil {
				return row, err
			}
		}

		// "Job"
		col++
		if item.Job != nil {
			if err := writeColumn(f, sheet, col, row, item.Job.Title); err != nil {
				return row, err
			}
		}

		// "Company"
		col++
		if item.Job != nil && item.Job.Company != nil {
			if err := writeColumn(f, sheet, col, row, item.Job.Company.Name); err != nil {
				return row, err
			}
		}

		// "Applied at"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Stage"
		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentStage.Name()); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.OverallStatus)); err != nil {
			return row, err
		}

		// "Feedback"
		col++
		if err := writeColumn(f, sheet, col, row, item.Feedback); err != nil {
			return row, err
		}
	}
	return row, nil
}
