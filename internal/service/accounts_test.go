package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/mocks"
)

func TestAccountServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo)

	filter := model.AccountFilter{Role: domainauth.RoleCompanyAdmin}
	want := []*model.Account{{ID: "a1", Email: "biz@example.com"}}
	repo.EXPECT().List(gomock.Any(), filter).Return(want, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountServiceDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo)

	repo.EXPECT().Delete(gomock.Any(), "a1").Return(true, nil)

	deleted, err := svc.Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, deleted)
}
