package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
)

// MigrateAthlete copies the backup's athlete profile onto the caller's
// account. The backup email must match the authenticated email.
func (m *Migrator) MigrateAthlete(ctx context.Context, athlete *mywod.Athlete, claims domain.Claims) (*domain.User, error) {
	if athlete == nil {
		return nil, fmt.Errorf("%w: backup has no athlete", ErrNotFound)
	}
	if !sameEmail(athlete.Email, claims.Email) {
		return nil, ErrForbidden
	}

	user, err := m.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	user.BoxName = athlete.BoxName
	user.DateOfBirth = athlete.DateOfBirth
	user.Email = strings.ToLower(strings.TrimSpace(athlete.Email))
	user.FirstName = athlete.FirstName
	user.LastName = athlete.LastName
	user.Height = athlete.Height
	user.Weight = athlete.Weight

	if len(athlete.Avatar) > 0 {
		url, err := m.avatars.Save(ctx, user.ID, athlete.Avatar)
		if err != nil {
			// Keep the old avatar rather than losing the whole profile.
			m.logger.Warn("avatar not migrated", "user_id", user.ID.Hex(), "error", err)
		} else {
			user.AvatarURL = url
		}
	}

	updated, err := m.users.UpdateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
