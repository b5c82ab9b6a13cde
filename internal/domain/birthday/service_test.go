package birthday_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/amethystbot/amethyst/internal/domain/birthday"
	"github.com/amethystbot/amethyst/internal/domain/birthday/mock"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func Test_Service_Add(t *testing.T) {
	tests := []struct {
		name       string
		month, day int
		repoErr    error
		callsRepo  bool
		wantErr    error
	}{
		{name: "ok", month: 7, day: 15, callsRepo: true},
		{name: "leap day", month: 2, day: 29, callsRepo: true},
		{name: "april 31st", month: 4, day: 31, wantErr: birthday.ErrInvalidDate},
		{name: "month 13", month: 13, day: 1, wantErr: birthday.ErrInvalidDate},
		{name: "already saved", month: 1, day: 1, callsRepo: true, repoErr: repositories.ErrDuplicate, wantErr: birthday.ErrExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			if tt.callsRepo {
				repo.EXPECT().Create(gomock.Any(), &models.Birthday{
					GuildID: 1, UserID: 2, BirthMonth: tt.month, BirthDay: tt.day,
				}).Return(tt.repoErr)
			}

			err := birthday.NewService(repo).Add(context.Background(), 1, 2, tt.month, tt.day, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Service_Edit(t *testing.T) {
	t.Run("nothing to edit", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		_, err := birthday.NewService(repo).Edit(context.Background(), 1, 2, birthday.Edit{})
		assert.ErrorIs(t, err, birthday.ErrNothingToEdit)
	})

	t.Run("not saved", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Get(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(nil, sql.ErrNoRows)
		_, err := birthday.NewService(repo).Edit(context.Background(), 1, 2, birthday.Edit{Day: intPtr(3)})
		assert.ErrorIs(t, err, birthday.ErrNotFound)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Get(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).
			Return(&models.Birthday{GuildID: 1, UserID: 2, BirthMonth: 5, BirthDay: 31}, nil)
		repo.EXPECT().Update(gomock.Any(), &models.Birthday{GuildID: 1, UserID: 2, BirthMonth: 5, BirthDay: 4}).Return(nil)

		b, err := birthday.NewService(repo).Edit(context.Background(), 1, 2, birthday.Edit{Day: intPtr(4)})
		require.NoError(t, err)
		assert.Equal(t, 5, b.BirthMonth)
	})

	t.Run("edit produces impossible date", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Get(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).
			Return(&models.Birthday{GuildID: 1, UserID: 2, BirthMonth: 5, BirthDay: 31}, nil)

		_, err := birthday.NewService(repo).Edit(context.Background(), 1, 2, birthday.Edit{Month: intPtr(6)})
		assert.ErrorIs(t, err, birthday.ErrInvalidDate)
	})
}

func Test_Service_Remove(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().Delete(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(false, nil)
	assert.ErrorIs(t, birthday.NewService(repo).Remove(context.Background(), 1, 2), birthday.ErrNotFound)
}

func Test_Ordinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st"}
	for day, want := range cases {
		assert.Equal(t, want, birthday.Ordinal(day))
	}
	assert.Equal(t, "July", birthday.MonthName(7))
	assert.Empty(t, birthday.MonthName(0))
}
