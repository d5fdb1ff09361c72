package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

type mockPiercingService struct {
	mock.Mock
}

func (m *mockPiercingService) AddPiercingService(ctx context.Context, p storage.PiercingService) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

type mockOtherService struct {
	mock.Mock
}

func (m *mockOtherService) AddOtherService(ctx context.Context, o storage.OtherService) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func TestPiercingWizardRequiresDateAndAmount(t *testing.T) {
	svc := new(mockPiercingService)
	w := NewPiercingWizard(svc)

	w.SetField("date", "")
	assert.False(t, w.Advance())
	assert.Equal(t, "Date is required", w.FieldError("date"))

	w.SetField("date", "2026-08-30")
	require.True(t, w.Advance())

	assert.False(t, w.Advance())
	assert.Equal(t, "Valid amount is required", w.FieldError("amount"))

	w.SetField("amount", "0")
	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	svc.AssertNotCalled(t, "AddPiercingService", mock.Anything, mock.Anything)
}

func TestPiercingWizardSubmit(t *testing.T) {
	svc := new(mockPiercingService)

	var got storage.PiercingService
	svc.On("AddPiercingService", mock.Anything, mock.AnythingOfType("storage.PiercingService")).
		Run(func(args mock.Arguments) { got = args.Get(1).(storage.PiercingService) }).
		Return(int64(11), nil)

	w := NewPiercingWizard(svc)
	w.SetField("date", "2026-08-30")
	w.SetField("name", "  Ravi  ")
	w.SetField("phone", " 98765 ")
	w.SetField("amount", "150")
	w.SetField("remarks", "both ears")

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, StatusSubmitted, w.Status())

	assert.Equal(t, sanitize.DateToNanos("2026-08-30"), got.Date)
	assert.Equal(t, "Ravi", got.Name)
	assert.Equal(t, "98765", got.Phone)
	assert.Equal(t, int64(15000), got.Amount)
	assert.Equal(t, "both ears", got.Remarks)

	svc.AssertExpectations(t)
}

func TestOtherWizardRequiresPositiveAmount(t *testing.T) {
	svc := new(mockOtherService)
	w := NewOtherWizard(svc)

	require.True(t, w.Advance())

	w.SetField("amount", "-10")
	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Valid amount is required", w.FieldError("amount"))
	svc.AssertNotCalled(t, "AddOtherService", mock.Anything, mock.Anything)
}

func TestOtherWizardSubmit(t *testing.T) {
	svc := new(mockOtherService)

	var got storage.OtherService
	svc.On("AddOtherService", mock.Anything, mock.AnythingOfType("storage.OtherService")).
		Run(func(args mock.Arguments) { got = args.Get(1).(storage.OtherService) }).
		Return(int64(4), nil)

	w := NewOtherWizard(svc)
	w.SetField("name", "Meena")
	w.SetField("amount", "75.50")

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, "Meena", got.Name)
	assert.Equal(t, int64(7550), got.Amount)

	svc.AssertExpectations(t)
}
