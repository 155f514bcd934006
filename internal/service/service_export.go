package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
	"github.com/MKhiriev/go-patient-vault/models"
)

// Export section names used in file names.
const (
	ExportSectionHealth   = "health"
	ExportSectionNotes    = "notes"
	ExportSectionPersonal = "personal_info"
)

// ExportOptions selects what Export writes. Range bounds are inclusive; an
// empty bound is open. Range does not apply to personal info.
type ExportOptions struct {
	Dir          string
	Range        models.DateRange
	Health       bool
	Notes        bool
	PersonalInfo bool
}

type exportService struct {
	records   RecordService
	session   *session.Session
	validator validators.Validator
	now       func() time.Time
}

// NewExportService constructs an [ExportService].
func NewExportService(records RecordService, sess *session.Session, validator validators.Validator) ExportService {
	return &exportService{
		records:   records,
		session:   sess,
		validator: validator,
		now:       time.Now,
	}
}

// Export writes one CSV file per selected section into opts.Dir and returns
// their paths in the order health, notes, personal info.
func (s *exportService) Export(ctx context.Context, opts ExportOptions) ([]string, error) {
	log := logger.FromContext(ctx)

	if !opts.Health && !opts.Notes && !opts.PersonalInfo {
		return nil, ErrNothingToExport
	}
	if err := s.validator.Validate(ctx, opts.Range); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	username, key, ok := s.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	data, err := s.records.LoadData(ctx, username, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.UserData{}
		data.Normalize()
	}

	if opts.Dir == "" {
		opts.Dir = "."
	}
	if err = os.MkdirAll(opts.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating export directory: %w", err)
	}

	day := s.now().Format(models.HealthDateLayout)
	var paths []string

	write := func(section string, rows [][]string) error {
		path := filepath.Join(opts.Dir, fmt.Sprintf("patient_data_export_%s_%s.csv", day, section))
		if err := writeCSV(path, rows); err != nil {
			log.Err(err).Str("func", "*exportService.Export").Str("section", section).Msg("error writing export")
			return err
		}
		paths = append(paths, path)
		return nil
	}

	if opts.Health {
		if err = write(ExportSectionHealth, healthRows(data.HealthHistory, opts.Range)); err != nil {
			return paths, err
		}
	}
	if opts.Notes {
		if err = write(ExportSectionNotes, noteRows(data.Notes, opts.Range)); err != nil {
			return paths, err
		}
	}
	if opts.PersonalInfo {
		if err = write(ExportSectionPersonal, personalInfoRows(data.PersonalInfo)); err != nil {
			return paths, err
		}
	}

	log.Info().Str("username", username).Int("files", len(paths)).Msg("data exported")
	return paths, nil
}

func healthRows(entries []models.HealthEntry, r models.DateRange) [][]string {
	rows := [][]string{{"date", "waterIntake", "colostomyOutput", "painLevel"}}
	for _, e := range entries {
		if !r.Contains(e.Date) {
			continue
		}
		rows = append(rows, []string{
			e.Date,
			strconv.Itoa(e.WaterIntake),
			strconv.Itoa(e.ColostomyOutput),
			strconv.Itoa(e.PainLevel),
		})
	}
	return rows
}

// noteRows filters notes by the local calendar day of their creation time.
func noteRows(notes []models.Note, r models.DateRange) [][]string {
	rows := [][]string{{"id", "date", "text"}}
	for _, n := range notes {
		date := time.UnixMilli(n.ID).Format(models.HealthDateLayout)
		if !r.Contains(date) {
			continue
		}
		rows = append(rows, []string{strconv.FormatInt(n.ID, 10), date, n.Text})
	}
	return rows
}

func personalInfoRows(info *models.PersonalInfo) [][]string {
	rows := [][]string{{"name", "age", "height", "weight", "gender", "patientNumber"}}
	if info != nil {
		rows = append(rows, []string{info.Name, info.Age, info.Height, info.Weight, info.Gender, info.PatientNumber})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err = w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
