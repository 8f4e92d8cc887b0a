package services

import (
	"context"
	"testing"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctorsByUser map[int64]*models.Doctor
	existingIDs   map[int64]bool
	created       []*models.Doctor
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	f.created = append(f.created, doctor)
	return nil
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	for _, d := range f.doctorsByUser {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error) {
	return f.doctorsByUser[userID], nil
}

func (f *fakeDoctorRepo) IDExists(ctx context.Context, id int64) (bool, error) {
	return f.existingIDs[id], nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestEffectiveDoctorID(t *testing.T) {
	ownDoctor := &models.Doctor{ID: 5, Name: "Dr. Silva"}

	tests := []struct {
		name      string
		identity  *Identity
		doctors   map[int64]*models.Doctor
		requested *int64
		want      int64
		wantErr   error
	}{
		{
			name:      "superuser requested doctor is authoritative",
			identity:  &Identity{ID: 1, IsSuperuser: true},
			doctors:   map[int64]*models.Doctor{1: ownDoctor},
			requested: int64Ptr(9),
			want:      9,
		},
		{
			name:     "superuser falls back to own doctor",
			identity: &Identity{ID: 1, IsSuperuser: true},
			doctors:  map[int64]*models.Doctor{1: ownDoctor},
			want:     5,
		},
		{
			name:     "superuser with no doctor and no request",
			identity: &Identity{ID: 1, IsSuperuser: true},
			doctors:  map[int64]*models.Doctor{},
			wantErr:  ErrScopeRequired,
		},
		{
			name:     "non-superuser with no doctor",
			identity: &Identity{ID: 2},
			doctors:  map[int64]*models.Doctor{},
			wantErr:  ErrDoctorNotFound,
		},
		{
			name:      "non-superuser requesting another doctor",
			identity:  &Identity{ID: 2},
			doctors:   map[int64]*models.Doctor{2: ownDoctor},
			requested: int64Ptr(9),
			wantErr:   ErrForbidden,
		},
		{
			name:      "non-superuser requesting own doctor",
			identity:  &Identity{ID: 2},
			doctors:   map[int64]*models.Doctor{2: ownDoctor},
			requested: int64Ptr(5),
			want:      5,
		},
		{
			name:     "non-superuser omitting doctor",
			identity: &Identity{ID: 2},
			doctors:  map[int64]*models.Doctor{2: ownDoctor},
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := NewScopeService(&fakeDoctorRepo{doctorsByUser: tt.doctors})

			got, err := scope.EffectiveDoctorID(context.Background(), tt.identity, tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Supplying their own id and omitting it must be indistinguishable for a
// non-superuser.
func TestEffectiveDoctorIDOwnAndOmittedAreEquivalent(t *testing.T) {
	repo := &fakeDoctorRepo{doctorsByUser: map[int64]*models.Doctor{2: {ID: 5}}}
	scope := NewScopeService(repo)
	identity := &Identity{ID: 2}

	omitted, err := scope.EffectiveDoctorID(context.Background(), identity, nil)
	require.NoError(t, err)
	supplied, err := scope.EffectiveDoctorID(context.Background(), identity, int64Ptr(5))
	require.NoError(t, err)

	assert.Equal(t, omitted, supplied)
}

func TestOptionalScope(t *testing.T) {
	repo := &fakeDoctorRepo{doctorsByUser: map[int64]*models.Doctor{2: {ID: 5}}}
	scope := NewScopeService(repo)

	t.Run("superuser without request is clinic-wide", func(t *testing.T) {
		got, err := scope.OptionalScope(context.Background(), &Identity{ID: 1, IsSuperuser: true}, nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("superuser with request is scoped", func(t *testing.T) {
		got, err := scope.OptionalScope(context.Background(), &Identity{ID: 1, IsSuperuser: true}, int64Ptr(9))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(9), *got)
	})

	t.Run("non-superuser is pinned to own doctor", func(t *testing.T) {
		got, err := scope.OptionalScope(context.Background(), &Identity{ID: 2}, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(5), *got)
	})

	t.Run("non-superuser requesting another doctor is forbidden", func(t *testing.T) {
		_, err := scope.OptionalScope(context.Background(), &Identity{ID: 2}, int64Ptr(9))
		require.ErrorIs(t, err, ErrForbidden)
	})
}
