package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"jewel-shop/internal/storage"
)

type mockReportStorage struct {
	mock.Mock
}

func (m *mockReportStorage) GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error) {
	args := m.Called(ctx, count)
	if orders := args.Get(0); orders != nil {
		return orders.([]storage.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReportStorage) GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error) {
	args := m.Called(ctx, count)
	if repairs := args.Get(0); repairs != nil {
		return repairs.([]storage.RepairOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReportStorage) GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error) {
	args := m.Called(ctx, count)
	if services := args.Get(0); services != nil {
		return services.([]storage.PiercingService), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReportStorage) GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error) {
	args := m.Called(ctx, count)
	if services := args.Get(0); services != nil {
		return services.([]storage.OtherService), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGenerateWorkbook(t *testing.T) {
	store := new(mockReportStorage)
	store.On("GetRecentOrders", mock.Anything, reportRows).Return([]storage.Order{{
		BillNo:       42,
		CustomerName: "Asha",
		Material:     "Gold",
		OrderType:    "New Order",
		AddedWeight:  1000,
		RatePerGram:  50000,
		MaterialCost: 500000,
		MakingCharge: 20000,
		TotalCost:    520000,
		Status:       "Pending",
	}}, nil)
	store.On("GetRecentRepairOrders", mock.Anything, reportRows).Return([]storage.RepairOrder{{
		RepairID:  5,
		Material:  "Silver",
		TotalCost: 42000,
		Status:    "On process",
	}}, nil)
	store.On("GetRecentPiercingServices", mock.Anything, reportRows).Return([]storage.PiercingService{{
		ID: 11, Name: "Ravi", Amount: 15000,
	}}, nil)
	store.On("GetRecentOtherServices", mock.Anything, reportRows).Return([]storage.OtherService{{
		ID: 4, Name: "Meena", Amount: 7550,
	}}, nil)

	data, err := NewService(store).Generate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"Orders", "Repairs", "Services"}, wb.GetSheetList())

	customer, err := wb.GetCellValue("Orders", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer)

	// Money renders in display units, not minor units.
	totalCost, err := wb.GetCellValue("Orders", "P2")
	require.NoError(t, err)
	assert.Equal(t, "5200.00", totalCost)

	repairCost, err := wb.GetCellValue("Repairs", "G2")
	require.NoError(t, err)
	assert.Equal(t, "420.00", repairCost)

	// The services sheet lists piercing entries first, then other services.
	kind, err := wb.GetCellValue("Services", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Piercing", kind)
	kind, err = wb.GetCellValue("Services", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Other", kind)
}

func TestGenerateFailsWhenAnySourceFails(t *testing.T) {
	store := new(mockReportStorage)
	store.On("GetRecentOrders", mock.Anything, reportRows).Return(nil, errors.New("db connection lost"))
	store.On("GetRecentRepairOrders", mock.Anything, reportRows).Return([]storage.RepairOrder{}, nil)
	store.On("GetRecentPiercingServices", mock.Anything, reportRows).Return([]storage.PiercingService{}, nil)
	store.On("GetRecentOtherServices", mock.Anything, reportRows).Return([]storage.OtherService{}, nil)

	_, err := NewService(store).Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
}
