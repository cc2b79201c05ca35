package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/core/services"
)

type AdminGateServiceTestSuite struct {
	suite.Suite
	mockAdminRepo *MockAdminRepository
	gate          portssvc.AdminGateSvc
}

func (suite *AdminGateServiceTestSuite) SetupTest() {
	suite.mockAdminRepo = new(MockAdminRepository)
	suite.gate = services.NewAdminGateService(suite.mockAdminRepo, time.Minute)
}

func (suite *AdminGateServiceTestSuite) TestCheckAdmin_NoActiveRow() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindActiveAdmin", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()

	access, err := suite.gate.CheckAdmin(ctx, "user-1")

	suite.Require().NoError(err)
	suite.False(access.Authorized)
	suite.Empty(access.Name)
}

func (suite *AdminGateServiceTestSuite) TestCheckAdmin_ActiveAdmin() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindActiveAdmin", ctx, "admin-1").
		Return(&domain.AdminUser{UserID: "admin-1", Name: "Comissão", IsActive: true}, nil).Once()

	access, err := suite.gate.CheckAdmin(ctx, "admin-1")

	suite.Require().NoError(err)
	suite.True(access.Authorized)
	suite.Equal("Comissão", access.Name)
}

func (suite *AdminGateServiceTestSuite) TestCheckAdmin_CachedUntilForgotten() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindActiveAdmin", ctx, "admin-1").
		Return(&domain.AdminUser{UserID: "admin-1", Name: "Comissão", IsActive: true}, nil).Twice()

	for i := 0; i < 3; i++ {
		access, err := suite.gate.CheckAdmin(ctx, "admin-1")
		suite.Require().NoError(err)
		suite.True(access.Authorized)
	}
	suite.mockAdminRepo.AssertNumberOfCalls(suite.T(), "FindActiveAdmin", 1)

	suite.gate.Forget("admin-1")
	_, err := suite.gate.CheckAdmin(ctx, "admin-1")
	suite.Require().NoError(err)
	suite.mockAdminRepo.AssertNumberOfCalls(suite.T(), "FindActiveAdmin", 2)
}

func (suite *AdminGateServiceTestSuite) TestCheckAdmin_LookupErrorNotCached() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindActiveAdmin", ctx, "admin-1").Return(nil, assert.AnError).Once()
	suite.mockAdminRepo.On("FindActiveAdmin", ctx, "admin-1").
		Return(&domain.AdminUser{UserID: "admin-1", Name: "Comissão", IsActive: true}, nil).Once()

	_, err := suite.gate.CheckAdmin(ctx, "admin-1")
	suite.ErrorIs(err, apperrors.ErrStorage)

	access, err := suite.gate.CheckAdmin(ctx, "admin-1")
	suite.Require().NoError(err)
	suite.True(access.Authorized)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AdminGateServiceTestSuite) TestCheckAdmin_EmptyPrincipal() {
	access, err := suite.gate.CheckAdmin(context.Background(), "")

	suite.Require().NoError(err)
	suite.False(access.Authorized)
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "FindActiveAdmin", mock.Anything, mock.Anything)
}

func TestAdminGateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminGateServiceTestSuite))
}
