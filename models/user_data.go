// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"time"
)

// HealthDateLayout is the layout of [HealthEntry.Date].
const HealthDateLayout = "2006-01-02"

// UserData is the plaintext shape of the encrypted application data blob.
type UserData struct {
	PersonalInfo  *PersonalInfo     `json:"personalInfo"`
	Notes         []Note            `json:"notes"`
	HealthHistory []HealthEntry     `json:"healthHistory"`
	Requests      []RequestResponse `json:"requests,omitempty"`
}

// PersonalInfo is the profile form of the patient.
type PersonalInfo struct {
	Name          string `json:"name"`
	Age           string `json:"age"`
	Height        string `json:"height"`
	Weight        string `json:"weight,omitempty"`
	Gender        string `json:"gender,omitempty"`
	PatientNumber string `json:"patientNumber,omitempty"`
}

// Note is a free-text note. ID is the creation time in unix milliseconds
// and is unique within a [UserData].
type Note struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// HealthEntry is one day of health measurements. Date (YYYY-MM-DD) is the
// unique key of the entry.
type HealthEntry struct {
	Date            string `json:"date"`
	WaterIntake     int    `json:"waterIntake"`
	ColostomyOutput int    `json:"colostomyOutput"`
	PainLevel       int    `json:"painLevel"`
}

// RequestResponse records the decision taken on an inbound data-sharing
// request.
type RequestResponse struct {
	RequestID   int64     `json:"requestId"`
	Accepted    bool      `json:"accepted"`
	Message     string    `json:"message,omitempty"`
	RespondedAt time.Time `json:"respondedAt"`
}

// Normalize replaces nil collections with empty ones and sorts the health
// history descending by date.
func (d *UserData) Normalize() {
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.HealthHistory == nil {
		d.HealthHistory = []HealthEntry{}
	}
	SortHealthHistory(d.HealthHistory)
}

// SortHealthHistory sorts entries descending by date. YYYY-MM-DD dates sort
// correctly as strings.
func SortHealthHistory(entries []HealthEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// UpsertHealthEntry replaces the entry with the same date or appends a new
// one, then re-sorts the history.
func (d *UserData) UpsertHealthEntry(entry HealthEntry) {
	replaced := false
	for i := range d.HealthHistory {
		if d.HealthHistory[i].Date == entry.Date {
			d.HealthHistory[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		d.HealthHistory = append(d.HealthHistory, entry)
	}
	SortHealthHistory(d.HealthHistory)
}

// NoteIndex returns the position of the note with the given id or -1.
func (d *UserData) NoteIndex(id int64) int {
	for i, n := range d.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// BackupPayload is the subset of [UserData] written to backup files.
// Personal information is never included.
type BackupPayload struct {
	HealthHistory []HealthEntry     `json:"healthHistory"`
	Notes         []Note            `json:"notes"`
	Requests      []RequestResponse `json:"requests,omitempty"`
}
