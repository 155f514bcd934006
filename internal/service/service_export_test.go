package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func newExportFixture(t *testing.T) (*fixture, *exportService) {
	t.Helper()

	f := newFixture(t)
	f.signUp(t)
	ctx := context.Background()

	uds := f.services.UserDataService.(*userDataService)
	uds.now = fixedClock(time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local))
	_, err := uds.AddNote(ctx, "in range")
	require.NoError(t, err)
	uds.now = fixedClock(time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local))
	_, err = uds.AddNote(ctx, "out of range")
	require.NoError(t, err)

	for _, e := range []models.HealthEntry{
		{Date: "2026-01-01", WaterIntake: 1000, ColostomyOutput: 200, PainLevel: 1},
		{Date: "2026-01-31", WaterIntake: 1100, ColostomyOutput: 210, PainLevel: 2},
		{Date: "2026-02-01", WaterIntake: 1200, ColostomyOutput: 220, PainLevel: 3},
	} {
		require.NoError(t, uds.SaveHealthEntry(ctx, e))
	}
	require.NoError(t, uds.SavePersonalInfo(ctx, models.PersonalInfo{Name: "Alice", Age: "42", PatientNumber: "P-1"}))

	svc := f.services.ExportService.(*exportService)
	svc.now = fixedClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local))
	return f, svc
}

func TestExportService_Export_AllSections(t *testing.T) {
	_, svc := newExportFixture(t)
	dir := t.TempDir()

	paths, err := svc.Export(context.Background(), ExportOptions{
		Dir:          dir,
		Range:        models.DateRange{Start: "2026-01-01", End: "2026-01-31"},
		Health:       true,
		Notes:        true,
		PersonalInfo: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "patient_data_export_2026-03-01_health.csv"),
		filepath.Join(dir, "patient_data_export_2026-03-01_notes.csv"),
		filepath.Join(dir, "patient_data_export_2026-03-01_personal_info.csv"),
	}, paths)

	health := readCSV(t, paths[0])
	assert.Equal(t, [][]string{
		{"date", "waterIntake", "colostomyOutput", "painLevel"},
		{"2026-01-31", "1100", "210", "2"},
		{"2026-01-01", "1000", "200", "1"},
	}, health)

	notes := readCSV(t, paths[1])
	require.Len(t, notes, 2)
	assert.Equal(t, "2026-01-10", notes[1][1])
	assert.Equal(t, "in range", notes[1][2])

	personal := readCSV(t, paths[2])
	assert.Equal(t, []string{"Alice", "42", "", "", "", "P-1"}, personal[1])
}

func TestExportService_Export_OpenRange(t *testing.T) {
	_, svc := newExportFixture(t)

	paths, err := svc.Export(context.Background(), ExportOptions{Dir: t.TempDir(), Health: true})

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Len(t, readCSV(t, paths[0]), 4)
}

func TestExportService_Export_Errors(t *testing.T) {
	_, svc := newExportFixture(t)
	ctx := context.Background()

	_, err := svc.Export(ctx, ExportOptions{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, err = svc.Export(ctx, ExportOptions{
		Dir:    t.TempDir(),
		Range:  models.DateRange{Start: "2026-02-01", End: "2026-01-01"},
		Health: true,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExportService_Export_NotAuthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.ExportService.Export(context.Background(), ExportOptions{Dir: t.TempDir(), Notes: true})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
