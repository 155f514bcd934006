package validators

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-vault/models"
)

const (
	FieldDate         = "date"
	FieldMeasurements = "measurements"
	FieldPainLevel    = "pain_level"
	FieldText         = "text"
	FieldName         = "name"
	FieldAge          = "age"
	FieldRange        = "range"

	MaxPainLevel = 10
)

// UserDataValidator checks the pieces of [models.UserData] entered by the
// patient: health entries, notes, profile and export date ranges.
type UserDataValidator struct{}

func NewUserDataValidator() Validator {
	return &UserDataValidator{}
}

func (v *UserDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HealthEntry:
		return v.validateHealthEntry(value, fields...)
	case *models.HealthEntry:
		return v.validateHealthEntry(*value, fields...)

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.PersonalInfo:
		return v.validatePersonalInfo(value, fields...)
	case *models.PersonalInfo:
		return v.validatePersonalInfo(*value, fields...)

	case models.DateRange:
		return v.validateDateRange(value, fields...)
	case *models.DateRange:
		return v.validateDateRange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserDataValidator) validateHealthEntry(entry models.HealthEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldMeasurements, FieldPainLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if !isValidDate(entry.Date) {
				return ErrInvalidHealthDate
			}
		case FieldMeasurements:
			if entry.WaterIntake < 0 || entry.ColostomyOutput < 0 {
				return ErrNegativeMeasurement
			}
		case FieldPainLevel:
			if entry.PainLevel < 0 || entry.PainLevel > MaxPainLevel {
				return ErrInvalidPainLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserDataValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(note.Text) == "" {
				return ErrEmptyNoteText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserDataValidator) validatePersonalInfo(info models.PersonalInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAge}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(info.Name) == "" {
				return ErrEmptyName
			}
		case FieldAge:
			if info.Age == "" {
				continue
			}
			if age, err := strconv.Atoi(strings.TrimSpace(info.Age)); err != nil || age < 0 {
				return ErrInvalidAge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserDataValidator) validateDateRange(r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if (r.Start != "" && !isValidDate(r.Start)) || (r.End != "" && !isValidDate(r.End)) {
				return ErrInvalidHealthDate
			}
		case FieldRange:
			if r.Start != "" && r.End != "" && r.Start > r.End {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidDate(s string) bool {
	_, err := time.Parse(models.HealthDateLayout, s)
	return err == nil
}
