package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewel-shop/internal/constants"
	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

type mockRepairService struct {
	mock.Mock
}

func (m *mockRepairService) CreateRepairOrder(ctx context.Context, r storage.RepairOrder) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepairService) UpdateRepairOrder(ctx context.Context, repairID int64, r storage.RepairOrder) error {
	args := m.Called(ctx, repairID, r)
	return args.Error(0)
}

func (m *mockRepairService) GetRepairOrder(ctx context.Context, repairID int64) (*storage.RepairOrder, error) {
	args := m.Called(ctx, repairID)
	if repair := args.Get(0); repair != nil {
		return repair.(*storage.RepairOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRepairWizardDefaults(t *testing.T) {
	w := NewRepairWizard(new(mockRepairService))

	assert.Equal(t, 3, w.TotalSteps())
	assert.Equal(t, constants.RepairStatusOnProcess, w.Field("status"))
	assert.Equal(t, constants.DeliveryStatusPending, w.Field("deliveryStatus"))
	assert.NotEmpty(t, w.Field("date"))
	assert.Equal(t, "0.00", w.Field("totalCost"))
}

func TestRepairWizardTotalCost(t *testing.T) {
	w := NewRepairWizard(new(mockRepairService))

	w.SetField("materialCost", "300")
	w.SetField("makingCharge", "120.50")
	assert.Equal(t, "420.50", w.Field("totalCost"))

	w.SetField("makingCharge", "")
	assert.Equal(t, "300.00", w.Field("totalCost"))
}

func TestRepairWizardStepValidation(t *testing.T) {
	w := NewRepairWizard(new(mockRepairService))

	assert.False(t, w.Advance())
	assert.Equal(t, "Material is required", w.FieldError("material"))

	w.SetField("material", constants.MaterialSilver)
	require.True(t, w.Advance())

	w.SetField("materialCost", "-5")
	assert.False(t, w.Advance())
	assert.Equal(t, "Valid material cost is required", w.FieldError("materialCost"))

	w.SetField("materialCost", "300")
	require.True(t, w.Advance())

	w.SetField("status", "")
	assert.False(t, w.Advance())
	assert.Equal(t, "Status is required", w.FieldError("status"))
}

func TestRepairWizardSubmitCreate(t *testing.T) {
	svc := new(mockRepairService)

	var got storage.RepairOrder
	svc.On("CreateRepairOrder", mock.Anything, mock.AnythingOfType("storage.RepairOrder")).
		Run(func(args mock.Arguments) { got = args.Get(1).(storage.RepairOrder) }).
		Return(int64(9), nil)

	w := NewRepairWizard(svc)
	w.SetField("date", "2026-08-30")
	w.SetField("material", constants.MaterialGold)
	w.SetField("addedWt", "1.50")
	w.SetField("materialCost", "300")
	w.SetField("makingCharge", "120")

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, StatusSubmitted, w.Status())

	assert.Equal(t, sanitize.DateToNanos("2026-08-30"), got.Date)
	assert.Equal(t, int64(150), got.AddedMaterialWeight)
	assert.Equal(t, int64(30000), got.MaterialCost)
	assert.Equal(t, int64(12000), got.MakingCharge)
	assert.Equal(t, int64(42000), got.TotalCost)
	assert.Equal(t, constants.RepairStatusOnProcess, got.Status)

	svc.AssertExpectations(t)
}

func TestRepairWizardSubmitBlockedByEmptyStatus(t *testing.T) {
	svc := new(mockRepairService)

	w := NewRepairWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("deliveryStatus", "")

	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Delivery status is required", w.FieldError("deliveryStatus"))
	svc.AssertNotCalled(t, "CreateRepairOrder", mock.Anything, mock.Anything)
}

func TestRepairWizardEditRoundTrip(t *testing.T) {
	employee := int64(2)
	svc := new(mockRepairService)
	svc.On("GetRepairOrder", mock.Anything, int64(5)).Return(&storage.RepairOrder{
		RepairID:            5,
		Date:                sanitize.DateToNanos("2026-08-01"),
		Material:            constants.MaterialSilver,
		AddedMaterialWeight: 150,
		MaterialCost:        30000,
		MakingCharge:        12000,
		TotalCost:           42000,
		AssignedTo:          &employee,
		Status:              constants.RepairStatusOnProcess,
		DeliveryStatus:      constants.DeliveryStatusPending,
	}, nil)

	var got storage.RepairOrder
	svc.On("UpdateRepairOrder", mock.Anything, int64(5), mock.AnythingOfType("storage.RepairOrder")).
		Run(func(args mock.Arguments) { got = args.Get(2).(storage.RepairOrder) }).
		Return(nil)

	w, err := NewRepairWizardForEdit(context.Background(), svc, 5)
	require.NoError(t, err)
	assert.True(t, w.EditMode())
	assert.Equal(t, "2026-08-01", w.Field("date"))
	assert.Equal(t, "1.50", w.Field("addedWt"))
	assert.Equal(t, "420.00", w.Field("totalCost"))

	w.SetField("status", constants.RepairStatusComplete)
	w.SetField("deliveryStatus", constants.DeliveryStatusDelivered)

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, constants.RepairStatusComplete, got.Status)
	assert.Equal(t, constants.DeliveryStatusDelivered, got.DeliveryStatus)
	assert.Equal(t, &employee, got.AssignedTo)
}

func TestRepairWizardRemoteFailure(t *testing.T) {
	svc := new(mockRepairService)
	svc.On("CreateRepairOrder", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("Something went wrong. Please try again."))

	w := NewRepairWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("materialCost", "300")
	w.SetField("makingCharge", "120")

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, w.Status())
	assert.Equal(t, "Something went wrong. Please try again.", w.Banner())
}
