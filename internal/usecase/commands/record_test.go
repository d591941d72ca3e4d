//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"washbook/internal/domain/catalog"
	"washbook/internal/domain/record"
	"washbook/internal/domain/washer"
	"washbook/internal/infra"
	"washbook/internal/pkg/clock"
	"washbook/internal/pkg/errs"
	"washbook/internal/usecase/commands"
	commandsmock "washbook/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecordCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockRecordWriteRepo
	mockWashers  *commandsmock.MockWasherReader
	mockServices *commandsmock.MockServiceReader
	cmds         commands.RecordCommands
}

func (s *RecordCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockRecordWriteRepo(s.mockCtrl)
	s.mockWashers = commandsmock.NewMockWasherReader(s.mockCtrl)
	s.mockServices = commandsmock.NewMockServiceReader(s.mockCtrl)

	// 19:30 UTC is 14:30 in Bogotá.
	mockClock := clock.NewMockClock(time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC))
	shopClock, err := clock.NewShopClock(mockClock, "America/Bogota")
	s.Require().NoError(err)

	s.cmds = commands.NewRecordCommands(s.mockRepo, s.mockWashers, s.mockServices, shopClock)
}

func (s *RecordCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecordCommandsSuite(t *testing.T) {
	suite.Run(t, new(RecordCommandsTestSuite))
}

func basePatch() record.Patch {
	return record.Patch{
		Cost:       decimal.NewFromInt(25000),
		Percentage: decimal.NewFromInt(40),
	}
}

func (s *RecordCommandsTestSuite) TestCreate() {
	s.Run("success: snapshots the washer name and business stamp", func() {
		s.mockWashers.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&washer.Washer{ID: 1, FirstName: "Juan", LastName: "Pérez", IsActive: true}, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&catalog.Service{ID: 1, Name: "Lavado General"}, nil)
		s.mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *record.Record) (int64, error) {
				s.Equal("Juan Pérez", rec.WasherName())
				s.Equal("2026-03-10", rec.Date())
				s.Equal("14:30:00", rec.TimeOfDay())
				s.Equal(record.PaymentPending, rec.PaymentStatus())
				return 42, nil
			})

		id, err := s.cmds.Create(context.Background(), commands.CreateRecordParams{
			VehicleType: "car",
			ServiceID:   1,
			Cost:        decimal.NewFromInt(25000),
			Percentage:  decimal.NewFromInt(40),
			WasherID:    1,
			UserID:      1,
		})
		s.NoError(err)
		s.Equal(int64(42), id)
	})

	s.Run("failure: unknown washer id", func() {
		s.mockWashers.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("washer not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(context.Background(), commands.CreateRecordParams{
			VehicleType: "car",
			ServiceID:   1,
			Cost:        decimal.NewFromInt(25000),
			Percentage:  decimal.NewFromInt(40),
			WasherID:    99,
			UserID:      1,
		})
		s.ErrorIs(err, errs.ErrWasherNotFound)
	})

	s.Run("failure: unknown service id", func() {
		s.mockWashers.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&washer.Washer{ID: 1, FirstName: "Juan", LastName: "Pérez", IsActive: true}, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), int64(88)).
			Return(nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(context.Background(), commands.CreateRecordParams{
			VehicleType: "car",
			ServiceID:   88,
			Cost:        decimal.NewFromInt(25000),
			Percentage:  decimal.NewFromInt(40),
			WasherID:    1,
			UserID:      1,
		})
		s.ErrorIs(err, errs.ErrServiceNotFound)
	})
}

func (s *RecordCommandsTestSuite) TestUpdate() {
	s.Run("literal washer name is applied without id validation", func() {
		p := basePatch()
		name := "Nombre Inventado"
		p.WasherName = &name

		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, got record.Patch) error {
				s.Require().NotNil(got.WasherName)
				s.Equal("Nombre Inventado", *got.WasherName)
				s.Nil(got.WasherID)
				return nil
			})

		s.NoError(s.cmds.Update(context.Background(), 5, p))
	})

	s.Run("washer id re-resolves the snapshot name over a literal", func() {
		p := basePatch()
		washerID := int64(7)
		name := "Nombre Inventado"
		p.WasherID = &washerID
		p.WasherName = &name

		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		s.mockWashers.EXPECT().FindByID(gomock.Any(), washerID).
			Return(&washer.Washer{ID: 7, FirstName: "Pedro", LastName: "Gómez", IsActive: true}, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, got record.Patch) error {
				s.Require().NotNil(got.WasherName)
				s.Equal("Pedro Gómez", *got.WasherName)
				return nil
			})

		s.NoError(s.cmds.Update(context.Background(), 5, p))
	})

	s.Run("failure: unknown washer id", func() {
		p := basePatch()
		washerID := int64(99)
		p.WasherID = &washerID

		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		s.mockWashers.EXPECT().FindByID(gomock.Any(), washerID).
			Return(nil, infra.WrapRepoErr("washer not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.Update(context.Background(), 5, p), errs.ErrWasherNotFound)
	})

	s.Run("failure: unknown service id", func() {
		p := basePatch()
		serviceID := int64(88)
		p.ServiceID = &serviceID

		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).
			Return(nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.Update(context.Background(), 5, p), errs.ErrServiceNotFound)
	})

	s.Run("failure: record does not exist", func() {
		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(404)).Return(false, nil)

		s.ErrorIs(s.cmds.Update(context.Background(), 404, basePatch()), errs.ErrRecordNotFound)
	})

	s.Run("failure: invalid patch is rejected before any lookup", func() {
		p := basePatch()
		p.Percentage = decimal.NewFromInt(150)

		s.ErrorIs(s.cmds.Update(context.Background(), 5, p), errs.ErrDomainValidation)
	})
}

func (s *RecordCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		s.mockRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		s.NoError(s.cmds.Delete(context.Background(), 5))
	})

	s.Run("failure: record does not exist", func() {
		s.mockRepo.EXPECT().Exists(gomock.Any(), int64(404)).Return(false, nil)

		s.ErrorIs(s.cmds.Delete(context.Background(), 404), errs.ErrRecordNotFound)
	})
}
