package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserData_Normalize(t *testing.T) {
	d := UserData{HealthHistory: []HealthEntry{{Date: "2026-01-01"}, {Date: "2026-03-01"}, {Date: "2026-02-01"}}}

	d.Normalize()

	assert.NotNil(t, d.Notes)
	assert.Empty(t, d.Notes)
	assert.Equal(t, []string{"2026-03-01", "2026-02-01", "2026-01-01"}, dates(d.HealthHistory))

	var empty UserData
	empty.Normalize()
	assert.NotNil(t, empty.HealthHistory)
}

func TestUserData_UpsertHealthEntry(t *testing.T) {
	d := UserData{}
	d.UpsertHealthEntry(HealthEntry{Date: "2026-05-01", WaterIntake: 1})
	d.UpsertHealthEntry(HealthEntry{Date: "2026-05-03", WaterIntake: 3})
	d.UpsertHealthEntry(HealthEntry{Date: "2026-05-01", WaterIntake: 10})

	require.Len(t, d.HealthHistory, 2)
	assert.Equal(t, []string{"2026-05-03", "2026-05-01"}, dates(d.HealthHistory))
	assert.Equal(t, 10, d.HealthHistory[1].WaterIntake)
}

func TestUserData_NoteIndex(t *testing.T) {
	d := UserData{Notes: []Note{{ID: 5}, {ID: 9}}}

	assert.Equal(t, 1, d.NoteIndex(9))
	assert.Equal(t, -1, d.NoteIndex(1))
}

func TestUserData_JSONShape(t *testing.T) {
	d := UserData{}
	d.Normalize()

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{"personalInfo":null,"notes":[],"healthHistory":[]}`, string(raw))
}

func TestBackupPayload_HasNoPersonalInfo(t *testing.T) {
	raw, err := json.Marshal(BackupPayload{Notes: []Note{{ID: 1, Text: "x"}}})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "personalInfo")
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: "2026-05-01", End: "2026-05-31"}

	assert.True(t, r.Contains("2026-05-01"))
	assert.True(t, r.Contains("2026-05-31"))
	assert.False(t, r.Contains("2026-04-30"))
	assert.False(t, r.Contains("2026-06-01"))
	assert.True(t, DateRange{}.Contains("1999-01-01"))
	assert.True(t, DateRange{Start: "2026-05-01"}.Contains("2030-01-01"))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1", "2026-10-01", "abc")

	assert.Equal(t, "v1", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
	assert.Equal(t, []string{"Build version: v1", "Build date: 2026-10-01", "Build commit: abc"}, info.Lines())

	blank := NewAppBuildInfo("", "  ", "")
	assert.Equal(t, BuildInfoUnknown, blank.BuildVersion())
	assert.Equal(t, BuildInfoUnknown, blank.BuildDate())
	assert.Equal(t, BuildInfoUnknown, AppBuildInfo{}.BuildCommit())
}

func dates(entries []HealthEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Date
	}
	return out
}
