// Package report builds the Excel business report: one sheet per record
// kind, with weights and money rendered in display units.
package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

// All listed rows go in the workbook; the recent-list limit does not apply
// to reports.
const reportRows = 10000

type ReportStorage interface {
	GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error)
	GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error)
	GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error)
	GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error)
}

type Service struct {
	storage ReportStorage
}

func NewService(storage ReportStorage) *Service {
	return &Service{storage: storage}
}

func (s *Service) Generate(ctx context.Context) ([]byte, error) {
	const op = "service.report.Generate"

	var (
		orders   []storage.Order
		repairs  []storage.RepairOrder
		piercing []storage.PiercingService
		other    []storage.OtherService
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.storage.GetRecentOrders(gCtx, reportRows)
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		repairs, err = s.storage.GetRecentRepairOrders(gCtx, reportRows)
		if err != nil {
			return fmt.Errorf("repairs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		piercing, err = s.storage.GetRecentPiercingServices(gCtx, reportRows)
		if err != nil {
			return fmt.Errorf("piercing services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		other, err = s.storage.GetRecentOtherServices(gCtx, reportRows)
		if err != nil {
			return fmt.Errorf("other services: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	f.SetSheetName("Sheet1", "Orders")
	writeOrdersSheet(f, "Orders", headerStyle, orders)
	writeRepairsSheet(f, headerStyle, repairs)
	writeServicesSheet(f, headerStyle, piercing, other)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeOrdersSheet(f *excelize.File, sheet string, headerStyle int, orders []storage.Order) {
	headers := []string{"Bill No", "Date", "Customer", "Phone", "Material", "Item", "Order Type",
		"Exchange Wt", "Deduct Wt", "Added Wt", "Total Wt",
		"Rate/Gm", "Material Cost", "Making Charge", "Other Charge", "Total Cost",
		"Delivery Date", "Status", "Remarks"}
	writeHeader(f, sheet, headerStyle, headers)

	for rowIdx, o := range orders {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), o.BillNo)
		f.SetCellValue(sheet, cellName(2, rowNum), sanitize.FormatDate(o.Timestamp))
		f.SetCellValue(sheet, cellName(3, rowNum), o.CustomerName)
		f.SetCellValue(sheet, cellName(4, rowNum), o.DeliveryContact)
		f.SetCellValue(sheet, cellName(5, rowNum), o.Material)
		f.SetCellValue(sheet, cellName(6, rowNum), o.MaterialDescription)
		f.SetCellValue(sheet, cellName(7, rowNum), o.OrderType)
		f.SetCellValue(sheet, cellName(8, rowNum), sanitize.HundredthsToDisplay(o.ExchangeWeight))
		f.SetCellValue(sheet, cellName(9, rowNum), sanitize.HundredthsToDisplay(o.DeductWeight))
		f.SetCellValue(sheet, cellName(10, rowNum), sanitize.HundredthsToDisplay(o.AddedWeight))
		f.SetCellValue(sheet, cellName(11, rowNum), sanitize.HundredthsToDisplay(o.TotalWeight))
		f.SetCellValue(sheet, cellName(12, rowNum), sanitize.MinorToDisplay(o.RatePerGram))
		f.SetCellValue(sheet, cellName(13, rowNum), sanitize.MinorToDisplay(o.MaterialCost))
		f.SetCellValue(sheet, cellName(14, rowNum), sanitize.MinorToDisplay(o.MakingCharge))
		f.SetCellValue(sheet, cellName(15, rowNum), sanitize.MinorToDisplay(o.OtherCharge))
		f.SetCellValue(sheet, cellName(16, rowNum), sanitize.MinorToDisplay(o.TotalCost))
		f.SetCellValue(sheet, cellName(17, rowNum), sanitize.FormatDate(o.DeliveryDate))
		f.SetCellValue(sheet, cellName(18, rowNum), o.Status)
		f.SetCellValue(sheet, cellName(19, rowNum), o.Remarks)
	}
}

func writeRepairsSheet(f *excelize.File, headerStyle int, repairs []storage.RepairOrder) {
	const sheet = "Repairs"
	f.NewSheet(sheet)

	headers := []string{"Repair ID", "Date", "Material", "Added Wt",
		"Material Cost", "Making Charge", "Total Cost",
		"Delivery Date", "Status", "Delivery Status"}
	writeHeader(f, sheet, headerStyle, headers)

	for rowIdx, r := range repairs {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), r.RepairID)
		f.SetCellValue(sheet, cellName(2, rowNum), sanitize.FormatDate(r.Date))
		f.SetCellValue(sheet, cellName(3, rowNum), r.Material)
		f.SetCellValue(sheet, cellName(4, rowNum), sanitize.HundredthsToDisplay(r.AddedMaterialWeight))
		f.SetCellValue(sheet, cellName(5, rowNum), sanitize.MinorToDisplay(r.MaterialCost))
		f.SetCellValue(sheet, cellName(6, rowNum), sanitize.MinorToDisplay(r.MakingCharge))
		f.SetCellValue(sheet, cellName(7, rowNum), sanitize.MinorToDisplay(r.TotalCost))
		f.SetCellValue(sheet, cellName(8, rowNum), sanitize.FormatDate(r.DeliveryDate))
		f.SetCellValue(sheet, cellName(9, rowNum), r.Status)
		f.SetCellValue(sheet, cellName(10, rowNum), r.DeliveryStatus)
	}
}

func writeServicesSheet(f *excelize.File, headerStyle int, piercing []storage.PiercingService, other []storage.OtherService) {
	const sheet = "Services"
	f.NewSheet(sheet)

	headers := []string{"Kind", "ID", "Date", "Name", "Phone", "Amount", "Remarks"}
	writeHeader(f, sheet, headerStyle, headers)

	rowNum := 1
	for _, p := range piercing {
		rowNum++
		f.SetCellValue(sheet, cellName(1, rowNum), "Piercing")
		f.SetCellValue(sheet, cellName(2, rowNum), p.ID)
		f.SetCellValue(sheet, cellName(3, rowNum), sanitize.FormatDate(p.Date))
		f.SetCellValue(sheet, cellName(4, rowNum), p.Name)
		f.SetCellValue(sheet, cellName(5, rowNum), p.Phone)
		f.SetCellValue(sheet, cellName(6, rowNum), sanitize.MinorToDisplay(p.Amount))
		f.SetCellValue(sheet, cellName(7, rowNum), p.Remarks)
	}
	for _, o := range other {
		rowNum++
		f.SetCellValue(sheet, cellName(1, rowNum), "Other")
		f.SetCellValue(sheet, cellName(2, rowNum), o.ID)
		f.SetCellValue(sheet, cellName(3, rowNum), sanitize.FormatDate(o.Timestamp))
		f.SetCellValue(sheet, cellName(4, rowNum), o.Name)
		f.SetCellValue(sheet, cellName(5, rowNum), o.Phone)
		f.SetCellValue(sheet, cellName(6, rowNum), sanitize.MinorToDisplay(o.Amount))
		f.SetCellValue(sheet, cellName(7, rowNum), o.Remarks)
	}
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) {
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, style)
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
