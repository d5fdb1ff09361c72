package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jewel-shop/internal/constants"
	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

const (
	maxWeight = 100_000_000 // 1,000,000 g in hundredths
	maxMoney  = 100_000_000 // 1,000,000.00 in minor units
)

type OrderService interface {
	PlaceOrder(ctx context.Context, o storage.Order) (int64, error)
	UpdateOrder(ctx context.Context, billNo int64, o storage.Order) error
	GetOrder(ctx context.Context, billNo int64) (*storage.Order, error)
}

// OrderWizard is the four-step order entry flow:
// Basic Details, Weight, Amount, Delivery & Status.
type OrderWizard struct {
	*Form
	svc        OrderService
	editBillNo int64
}

func NewOrderWizard(svc OrderService) *OrderWizard {
	return &OrderWizard{
		Form: newForm(4, initialOrderFields(), validateOrderStep, recomputeOrder),
		svc:  svc,
	}
}

// NewOrderWizardForEdit fetches the existing order once and seeds the draft
// from it. A failed fetch means no wizard: the caller shows the error.
func NewOrderWizardForEdit(ctx context.Context, svc OrderService, billNo int64) (*OrderWizard, error) {
	order, err := svc.GetOrder(ctx, billNo)
	if err != nil {
		return nil, err
	}

	w := NewOrderWizard(svc)
	w.editBillNo = billNo
	w.hydrate(order)
	return w, nil
}

func (w *OrderWizard) EditMode() bool { return w.editBillNo != 0 }

// Submit validates the whole form, converts it to wire values and issues
// the create or update call. Validation failures never reach the network.
// A remote failure keeps the draft editable with the message attached.
func (w *OrderWizard) Submit(ctx context.Context) (int64, error) {
	if !w.validateAll(validateOrderSubmit) {
		return 0, ErrValidation
	}

	order, err := w.buildOrder()
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitting

	if w.editBillNo != 0 {
		if err := w.svc.UpdateOrder(ctx, w.editBillNo, order); err != nil {
			w.fail(err.Error())
			return 0, err
		}
		w.status = StatusSubmitted
		return w.editBillNo, nil
	}

	billNo, err := w.svc.PlaceOrder(ctx, order)
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitted
	return billNo, nil
}

func (w *OrderWizard) hydrate(o *storage.Order) {
	assignedTo := ""
	if o.AssignedTo != nil {
		assignedTo = strconv.FormatInt(*o.AssignedTo, 10)
	}

	status := o.Status
	if status == "" {
		status = "Pending"
	}

	for name, value := range map[string]string{
		"orderDate":    sanitize.Today(),
		"billNo":       strconv.FormatInt(o.BillNo, 10),
		"customerName": o.CustomerName,
		"phoneNo":      o.DeliveryContact,
		"material":     o.Material,
		"item":         o.MaterialDescription,
		"orderType":    o.OrderType,
		"exchangeWt":   sanitize.HundredthsToDisplay(o.ExchangeWeight),
		"deductWt":     sanitize.HundredthsToDisplay(o.DeductWeight),
		"addedWt":      sanitize.HundredthsToDisplay(o.AddedWeight),
		"ratePerGm":    sanitize.MinorToDisplay(o.RatePerGram),
		"makingCharge": sanitize.MinorToDisplay(o.MakingCharge),
		"otherCharge":  sanitize.MinorToDisplay(o.OtherCharge),
		"deliveryDate": sanitize.NanosToDate(o.DeliveryDate),
		"assignedTo":   assignedTo,
		"status":       status,
		"remarks":      o.Remarks,
	} {
		w.fields[name] = value
	}

	// totalWt, materialCost and totalCost are derived, never hydrated.
	recomputeOrder(w.fields)
}

func (w *OrderWizard) buildOrder() (storage.Order, error) {
	f := w.fields

	o := storage.Order{
		CustomerName:        strings.TrimSpace(f["customerName"]),
		DeliveryContact:     strings.TrimSpace(f["phoneNo"]),
		Material:            f["material"],
		MaterialDescription: strings.TrimSpace(f["item"]),
		OrderType:           f["orderType"],
		ExchangeWeight:      sanitize.WeightToHundredths(f["exchangeWt"]),
		DeductWeight:        sanitize.WeightToHundredths(f["deductWt"]),
		AddedWeight:         sanitize.WeightToHundredths(f["addedWt"]),
		TotalWeight:         sanitize.WeightToHundredths(f["totalWt"]),
		RatePerGram:         sanitize.CurrencyToMinor(f["ratePerGm"]),
		MaterialCost:        sanitize.CurrencyToMinor(f["materialCost"]),
		MakingCharge:        sanitize.CurrencyToMinor(f["makingCharge"]),
		OtherCharge:         sanitize.CurrencyToMinor(f["otherCharge"]),
		TotalCost:           sanitize.CurrencyToMinor(f["totalCost"]),
		DeliveryDate:        sanitize.DateToNanos(f["deliveryDate"]),
		Status:              f["status"],
		Remarks:             f["remarks"],
	}

	if assigned := strings.TrimSpace(f["assignedTo"]); assigned != "" {
		id, err := strconv.ParseInt(assigned, 10, 64)
		if err != nil {
			return storage.Order{}, fmt.Errorf("assignedTo is not a valid employee id: %q", assigned)
		}
		o.AssignedTo = &id
	}

	for _, check := range []error{
		sanitize.ValidRange(o.ExchangeWeight, "exchangeWt", 0, maxWeight),
		sanitize.ValidRange(o.DeductWeight, "deductWt", 0, maxWeight),
		sanitize.ValidRange(o.AddedWeight, "addedWt", 0, maxWeight),
		// Total weight may legitimately go negative on heavy deductions.
		sanitize.ValidRange(o.TotalWeight, "totalWt", -maxWeight, maxWeight),
		sanitize.ValidRange(o.RatePerGram, "ratePerGm", 0, maxMoney),
		sanitize.ValidRange(o.MaterialCost, "materialCost", 0, maxMoney),
		sanitize.ValidRange(o.MakingCharge, "makingCharge", 0, maxMoney),
		sanitize.ValidRange(o.OtherCharge, "otherCharge", 0, maxMoney),
		sanitize.ValidRange(o.TotalCost, "totalCost", 0, maxMoney),
	} {
		if check != nil {
			return storage.Order{}, check
		}
	}

	return o, nil
}

func initialOrderFields() map[string]string {
	return map[string]string{
		"orderDate":    sanitize.Today(),
		"billNo":       "Auto-generated",
		"customerName": "",
		"phoneNo":      "",
		"material":     "",
		"item":         "",
		"orderType":    "",
		"exchangeWt":   "0",
		"deductWt":     "0",
		"addedWt":      "0",
		"totalWt":      "0",
		"ratePerGm":    "0",
		"materialCost": "0",
		"makingCharge": "0",
		"otherCharge":  "0",
		"totalCost":    "0",
		"deliveryDate": "",
		"assignedTo":   "",
		"status":       "Pending",
		"remarks":      "",
	}
}

func validateOrderStep(f map[string]string, step int) map[string]string {
	errs := map[string]string{}

	if step == 1 {
		if f["material"] == "" {
			errs["material"] = "Material is required"
		}
		if f["material"] != constants.MaterialOther && f["orderType"] == "" {
			errs["orderType"] = "Order type is required"
		}
		if phone := strings.TrimSpace(f["phoneNo"]); phone != "" && !sanitize.ValidPhone(phone) {
			errs["phoneNo"] = "Please enter a valid phone number"
		}
	}

	return errs
}

func validateOrderSubmit(f map[string]string) map[string]string {
	errs := map[string]string{}
	for _, name := range []string{
		"exchangeWt", "deductWt", "addedWt", "totalWt",
		"ratePerGm", "materialCost", "makingCharge", "otherCharge", "totalCost",
	} {
		if !sanitize.IsNumeric(f[name]) {
			errs[name] = "Must be a number"
		}
	}
	return errs
}

type weightFields struct {
	exchangeWt bool
	deductWt   bool
	addedWt    bool
}

// weightFieldsEnabled mirrors the entry rules: new orders only add material,
// exchange orders touch all three fields, no selection is permissive.
func weightFieldsEnabled(orderType string) weightFields {
	switch orderType {
	case constants.OrderTypeNew, constants.OrderTypeNewReadymade:
		return weightFields{exchangeWt: false, deductWt: false, addedWt: true}
	case constants.OrderTypeExchange, constants.OrderTypeExchangeReadymade:
		return weightFields{exchangeWt: true, deductWt: true, addedWt: true}
	default:
		return weightFields{exchangeWt: true, deductWt: true, addedWt: true}
	}
}

// recomputeOrder is the derived-field reducer. Inputs are only ever user
// fields; totalWt, materialCost and totalCost are pure outputs, which makes
// a second pass a no-op.
func recomputeOrder(f map[string]string) {
	if f["material"] == constants.MaterialOther {
		f["orderType"] = ""
		f["ratePerGm"] = "0"
	}

	enabled := weightFieldsEnabled(f["orderType"])
	if f["material"] == constants.MaterialOther {
		enabled = weightFields{}
	}

	if !enabled.exchangeWt {
		f["exchangeWt"] = "0"
	}
	if !enabled.deductWt {
		f["deductWt"] = "0"
	}
	if !enabled.addedWt {
		f["addedWt"] = "0"
	}

	exchange := sanitize.ParseAmount(f["exchangeWt"])
	deduct := sanitize.ParseAmount(f["deductWt"])
	added := sanitize.ParseAmount(f["addedWt"])
	f["totalWt"] = formatAmount(exchange - deduct + added)

	materialCost := sanitize.ParseAmount(f["ratePerGm"]) * added
	f["materialCost"] = formatAmount(materialCost)

	totalCost := materialCost + sanitize.ParseAmount(f["makingCharge"]) + sanitize.ParseAmount(f["otherCharge"])
	f["totalCost"] = formatAmount(totalCost)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
