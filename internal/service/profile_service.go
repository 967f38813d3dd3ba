package service

import (
	"context"
	"fmt"

	"go-identity-service/internal/model"
	"go-identity-service/internal/validator"
)

type profileStore interface {
	Create(ctx context.Context, p model.Profile) error
	List(ctx context.Context) ([]model.Profile, error)
	UpdatePartial(ctx context.Context, upd model.ProfileUpdate) (int64, error)
}

type ProfileService struct {
	profiles profileStore
}

func NewProfileService(profiles profileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Create(ctx context.Context, p model.Profile) error {
	if err := validator.ValidateProfileCreate(p.FullName, p.PhoneNumber); err != nil {
		return err
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Update applies a partial update. The store is never touched unless the
// request names a user and at least one field. Zero matched rows is reported
// as ErrProfileNotFound, distinct from a store failure.
func (s *ProfileService) Update(ctx context.Context, upd model.ProfileUpdate) (model.UpdateResult, error) {
	if upd.UserID == "" {
		return model.UpdateResult{}, model.ErrMissingUserID
	}

	if !upd.HasFields() {
		return model.UpdateResult{}, model.ErrNoUpdateFields
	}

	affected, err := s.profiles.UpdatePartial(ctx, upd)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update profile: %w", err)
	}

	if affected == 0 {
		return model.UpdateResult{}, model.ErrProfileNotFound
	}

	return model.UpdateResult{Updated: affected}, nil
}
