package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
	"github.com/MKhiriev/go-patient-vault/models"
)

type userDataService struct {
	records   RecordService
	session   *session.Session
	validator validators.Validator
	now       func() time.Time
}

// NewUserDataService constructs a [UserDataService] working on behalf of
// the user signed in to sess.
func NewUserDataService(records RecordService, sess *session.Session, validator validators.Validator) UserDataService {
	return &userDataService{
		records:   records,
		session:   sess,
		validator: validator,
		now:       time.Now,
	}
}

func (s *userDataService) current() (string, *crypto.Key, error) {
	username, key, ok := s.session.Current()
	if !ok {
		return "", nil, ErrNotAuthenticated
	}
	return username, key, nil
}

// load returns an empty, normalized value for accounts without data.
func (s *userDataService) load(ctx context.Context) (*models.UserData, error) {
	username, key, err := s.current()
	if err != nil {
		return nil, err
	}

	data, err := s.records.LoadData(ctx, username, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.UserData{}
		data.Normalize()
	}
	return data, nil
}

func (s *userDataService) update(ctx context.Context, fn func(*models.UserData) error) error {
	username, key, err := s.current()
	if err != nil {
		return err
	}

	_, err = s.records.Update(ctx, username, key, fn)
	return err
}

func (s *userDataService) PersonalInfo(ctx context.Context) (*models.PersonalInfo, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.PersonalInfo, nil
}

func (s *userDataService) SavePersonalInfo(ctx context.Context, info models.PersonalInfo) error {
	if err := s.validator.Validate(ctx, info); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.update(ctx, func(data *models.UserData) error {
		data.PersonalInfo = &info
		return nil
	})
}

func (s *userDataService) ListNotes(ctx context.Context) ([]models.Note, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Notes, nil
}

// AddNote stamps the note with the creation time in milliseconds, moved
// forward if needed so ids stay unique.
func (s *userDataService) AddNote(ctx context.Context, text string) (models.Note, error) {
	note := models.Note{Text: text}
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	err := s.update(ctx, func(data *models.UserData) error {
		note.ID = s.now().UnixMilli()
		for _, n := range data.Notes {
			if n.ID >= note.ID {
				note.ID = n.ID + 1
			}
		}
		data.Notes = append(data.Notes, note)
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *userDataService) EditNote(ctx context.Context, id int64, text string) error {
	if err := s.validator.Validate(ctx, models.Note{ID: id, Text: text}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.update(ctx, func(data *models.UserData) error {
		i := data.NoteIndex(id)
		if i < 0 {
			return ErrNoteNotFound
		}
		data.Notes[i].Text = text
		return nil
	})
}

func (s *userDataService) DeleteNote(ctx context.Context, id int64) error {
	return s.update(ctx, func(data *models.UserData) error {
		i := data.NoteIndex(id)
		if i < 0 {
			return ErrNoteNotFound
		}
		data.Notes = slices.Delete(data.Notes, i, i+1)
		return nil
	})
}

func (s *userDataService) HealthHistory(ctx context.Context) ([]models.HealthEntry, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.HealthHistory, nil
}

func (s *userDataService) HealthEntry(ctx context.Context, date string) (models.HealthEntry, bool, error) {
	data, err := s.load(ctx)
	if err != nil {
		return models.HealthEntry{}, false, err
	}

	for _, e := range data.HealthHistory {
		if e.Date == date {
			return e, true, nil
		}
	}
	return models.HealthEntry{}, false, nil
}

// SaveHealthEntry inserts the entry or replaces the one with the same date.
func (s *userDataService) SaveHealthEntry(ctx context.Context, entry models.HealthEntry) error {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.update(ctx, func(data *models.UserData) error {
		data.UpsertHealthEntry(entry)
		return nil
	})
}
