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

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, o storage.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, billNo int64, o storage.Order) error {
	args := m.Called(ctx, billNo, o)
	return args.Error(0)
}

func (m *mockOrderService) GetOrder(ctx context.Context, billNo int64) (*storage.Order, error) {
	args := m.Called(ctx, billNo)
	if order := args.Get(0); order != nil {
		return order.(*storage.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestOrderWizardDerivedFields(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeExchange)
	w.SetField("exchangeWt", "5")
	w.SetField("deductWt", "1")
	w.SetField("addedWt", "10")
	w.SetField("ratePerGm", "500")
	w.SetField("makingCharge", "200")

	assert.Equal(t, "14.00", w.Field("totalWt"))
	assert.Equal(t, "5000.00", w.Field("materialCost"))
	assert.Equal(t, "5200.00", w.Field("totalCost"))

	// An unrelated edit must not disturb the derived values.
	w.SetField("remarks", "engraving")
	assert.Equal(t, "5000.00", w.Field("materialCost"))
	assert.Equal(t, "5200.00", w.Field("totalCost"))
}

func TestOrderWizardTotalWeightCanGoNegative(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	w.SetField("orderType", constants.OrderTypeExchange)
	w.SetField("exchangeWt", "2")
	w.SetField("deductWt", "5")

	assert.Equal(t, "-3.00", w.Field("totalWt"))
}

func TestOrderWizardOtherMaterialDisablesWeights(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	w.SetField("orderType", constants.OrderTypeExchange)
	w.SetField("exchangeWt", "5")
	w.SetField("addedWt", "10")
	w.SetField("ratePerGm", "500")
	w.SetField("makingCharge", "150")
	w.SetField("otherCharge", "50")

	w.SetField("material", constants.MaterialOther)

	assert.Equal(t, "", w.Field("orderType"))
	assert.Equal(t, "0", w.Field("ratePerGm"))
	assert.Equal(t, "0", w.Field("exchangeWt"))
	assert.Equal(t, "0", w.Field("addedWt"))
	assert.Equal(t, "0.00", w.Field("totalWt"))
	assert.Equal(t, "0.00", w.Field("materialCost"))
	assert.Equal(t, "200.00", w.Field("totalCost"))
}

func TestOrderWizardNewOrderZeroesExchangeWeights(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	w.SetField("orderType", constants.OrderTypeExchange)
	w.SetField("exchangeWt", "5")
	w.SetField("deductWt", "1")
	w.SetField("addedWt", "10")

	w.SetField("orderType", constants.OrderTypeNew)

	assert.Equal(t, "0", w.Field("exchangeWt"))
	assert.Equal(t, "0", w.Field("deductWt"))
	assert.Equal(t, "10.00", w.Field("totalWt"))
}

func TestOrderWizardAdvanceValidatesCurrentStep(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	assert.False(t, w.Advance())
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, "Material is required", w.FieldError("material"))
	assert.Equal(t, "Order type is required", w.FieldError("orderType"))

	w.SetField("material", constants.MaterialGold)
	assert.Empty(t, w.FieldError("material"))
	w.SetField("orderType", constants.OrderTypeNew)

	assert.True(t, w.Advance())
	assert.Equal(t, 2, w.Step())

	// Advancing past the last step clamps.
	for i := 0; i < 5; i++ {
		assert.True(t, w.Advance())
	}
	assert.Equal(t, 4, w.Step())

	w.Retreat()
	assert.Equal(t, 3, w.Step())
}

func TestOrderWizardRetreatClampsAndNeverValidates(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))

	w.Retreat()
	assert.Equal(t, 1, w.Step())
	assert.Empty(t, w.Errors())
}

func TestOrderWizardPhoneSyntax(t *testing.T) {
	w := NewOrderWizard(new(mockOrderService))
	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeNew)

	w.SetField("phoneNo", "not a number")
	assert.False(t, w.Advance())
	assert.Equal(t, "Please enter a valid phone number", w.FieldError("phoneNo"))

	w.SetField("phoneNo", "+91 98765-43210")
	assert.True(t, w.Advance())
}

func TestOrderWizardSubmitCreate(t *testing.T) {
	svc := new(mockOrderService)

	var got storage.Order
	svc.On("PlaceOrder", mock.Anything, mock.AnythingOfType("storage.Order")).
		Run(func(args mock.Arguments) { got = args.Get(1).(storage.Order) }).
		Return(int64(42), nil)

	w := NewOrderWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeNew)
	w.SetField("customerName", "Asha")
	w.SetField("addedWt", "10")
	w.SetField("ratePerGm", "500")
	w.SetField("makingCharge", "200")

	billNo, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), billNo)
	assert.Equal(t, StatusSubmitted, w.Status())

	assert.Equal(t, "Asha", got.CustomerName)
	assert.Equal(t, int64(1000), got.AddedWeight)
	assert.Equal(t, int64(1000), got.TotalWeight)
	assert.Equal(t, int64(50000), got.RatePerGram)
	assert.Equal(t, int64(500000), got.MaterialCost)
	assert.Equal(t, int64(20000), got.MakingCharge)
	assert.Equal(t, int64(520000), got.TotalCost)
	assert.Nil(t, got.AssignedTo)

	svc.AssertExpectations(t)
}

func TestOrderWizardNonNumericBlocksSubmit(t *testing.T) {
	svc := new(mockOrderService)

	w := NewOrderWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeNew)
	w.SetField("makingCharge", "abc")

	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Must be a number", w.FieldError("makingCharge"))

	// Local validation failures never reach the service.
	svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestOrderWizardRemoteFailureKeepsDraft(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("Could not reach the server. Please check your connection and try again."))

	w := NewOrderWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeNew)
	w.SetField("customerName", "Asha")

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, w.Status())
	assert.Equal(t, "Could not reach the server. Please check your connection and try again.", w.Banner())
	assert.Equal(t, "Asha", w.Field("customerName"))

	// The next edit clears the banner and makes the draft editable again.
	w.SetField("customerName", "Asha R")
	assert.Equal(t, StatusEditing, w.Status())
	assert.Empty(t, w.Banner())
}

func TestOrderWizardRangeCheckFailsBeforeSend(t *testing.T) {
	svc := new(mockOrderService)

	w := NewOrderWizard(svc)
	w.SetField("material", constants.MaterialGold)
	w.SetField("orderType", constants.OrderTypeNew)
	w.SetField("addedWt", "2000000")

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, w.Status())
	svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestNewOrderWizardForEdit(t *testing.T) {
	employee := int64(3)
	svc := new(mockOrderService)
	svc.On("GetOrder", mock.Anything, int64(7)).Return(&storage.Order{
		BillNo:          7,
		CustomerName:    "Asha",
		DeliveryContact: "98765",
		Material:        constants.MaterialGold,
		OrderType:       constants.OrderTypeNew,
		AddedWeight:     1000,
		RatePerGram:     50000,
		MakingCharge:    20000,
		DeliveryDate:    sanitize.DateToNanos("2026-09-10"),
		AssignedTo:      &employee,
		Status:          "On process",
	}, nil)

	w, err := NewOrderWizardForEdit(context.Background(), svc, 7)
	require.NoError(t, err)
	assert.True(t, w.EditMode())

	assert.Equal(t, "7", w.Field("billNo"))
	assert.Equal(t, "Asha", w.Field("customerName"))
	assert.Equal(t, "10.00", w.Field("addedWt"))
	assert.Equal(t, "500.00", w.Field("ratePerGm"))
	assert.Equal(t, "200.00", w.Field("makingCharge"))
	assert.Equal(t, "2026-09-10", w.Field("deliveryDate"))
	assert.Equal(t, "3", w.Field("assignedTo"))
	assert.Equal(t, "On process", w.Field("status"))

	// Derived values come from the reducer, not the stored record.
	assert.Equal(t, "5000.00", w.Field("materialCost"))
	assert.Equal(t, "5200.00", w.Field("totalCost"))
}

func TestNewOrderWizardForEditFetchFailure(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrder", mock.Anything, int64(99)).Return(nil, storage.ErrOrderNotFound)

	w, err := NewOrderWizardForEdit(context.Background(), svc, 99)
	require.ErrorIs(t, err, storage.ErrOrderNotFound)
	assert.Nil(t, w)
}

func TestOrderWizardSubmitUpdate(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrder", mock.Anything, int64(7)).Return(&storage.Order{
		BillNo:    7,
		Material:  constants.MaterialGold,
		OrderType: constants.OrderTypeNew,
	}, nil)

	var got storage.Order
	svc.On("UpdateOrder", mock.Anything, int64(7), mock.AnythingOfType("storage.Order")).
		Run(func(args mock.Arguments) { got = args.Get(2).(storage.Order) }).
		Return(nil)

	w, err := NewOrderWizardForEdit(context.Background(), svc, 7)
	require.NoError(t, err)

	w.SetField("status", "Delivered")

	billNo, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), billNo)
	assert.Equal(t, "Delivered", got.Status)

	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}
