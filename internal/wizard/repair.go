package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

type RepairService interface {
	CreateRepairOrder(ctx context.Context, r storage.RepairOrder) (int64, error)
	UpdateRepairOrder(ctx context.Context, repairID int64, r storage.RepairOrder) error
	GetRepairOrder(ctx context.Context, repairID int64) (*storage.RepairOrder, error)
}

// RepairWizard is the three-step repair entry flow:
// Basic Details, Costs, Delivery & Status.
type RepairWizard struct {
	*Form
	svc          RepairService
	editRepairID int64
}

func NewRepairWizard(svc RepairService) *RepairWizard {
	return &RepairWizard{
		Form: newForm(3, initialRepairFields(), validateRepairStep, recomputeRepair),
		svc:  svc,
	}
}

func NewRepairWizardForEdit(ctx context.Context, svc RepairService, repairID int64) (*RepairWizard, error) {
	repair, err := svc.GetRepairOrder(ctx, repairID)
	if err != nil {
		return nil, err
	}

	w := NewRepairWizard(svc)
	w.editRepairID = repairID
	w.hydrate(repair)
	return w, nil
}

func (w *RepairWizard) EditMode() bool { return w.editRepairID != 0 }

func (w *RepairWizard) Submit(ctx context.Context) (int64, error) {
	if !w.validateAll(validateRepairSubmit) {
		return 0, ErrValidation
	}

	repair, err := w.buildRepair()
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitting

	if w.editRepairID != 0 {
		if err := w.svc.UpdateRepairOrder(ctx, w.editRepairID, repair); err != nil {
			w.fail(err.Error())
			return 0, err
		}
		w.status = StatusSubmitted
		return w.editRepairID, nil
	}

	repairID, err := w.svc.CreateRepairOrder(ctx, repair)
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitted
	return repairID, nil
}

func (w *RepairWizard) hydrate(r *storage.RepairOrder) {
	assignedTo := ""
	if r.AssignedTo != nil {
		assignedTo = strconv.FormatInt(*r.AssignedTo, 10)
	}

	for name, value := range map[string]string{
		"date":           sanitize.NanosToDate(r.Date),
		"material":       r.Material,
		"addedWt":        sanitize.HundredthsToDisplay(r.AddedMaterialWeight),
		"materialCost":   sanitize.MinorToDisplay(r.MaterialCost),
		"makingCharge":   sanitize.MinorToDisplay(r.MakingCharge),
		"deliveryDate":   sanitize.NanosToDate(r.DeliveryDate),
		"assignedTo":     assignedTo,
		"status":         r.Status,
		"deliveryStatus": r.DeliveryStatus,
	} {
		w.fields[name] = value
	}

	recomputeRepair(w.fields)
}

func (w *RepairWizard) buildRepair() (storage.RepairOrder, error) {
	f := w.fields

	r := storage.RepairOrder{
		Date:                sanitize.DateToNanos(f["date"]),
		Material:            f["material"],
		AddedMaterialWeight: sanitize.WeightToHundredths(f["addedWt"]),
		MaterialCost:        sanitize.CurrencyToMinor(f["materialCost"]),
		MakingCharge:        sanitize.CurrencyToMinor(f["makingCharge"]),
		TotalCost:           sanitize.CurrencyToMinor(f["totalCost"]),
		DeliveryDate:        sanitize.DateToNanos(f["deliveryDate"]),
		Status:              f["status"],
		DeliveryStatus:      f["deliveryStatus"],
	}

	if assigned := strings.TrimSpace(f["assignedTo"]); assigned != "" {
		id, err := strconv.ParseInt(assigned, 10, 64)
		if err != nil {
			return storage.RepairOrder{}, fmt.Errorf("assignedTo is not a valid employee id: %q", assigned)
		}
		r.AssignedTo = &id
	}

	for _, check := range []error{
		sanitize.ValidRange(r.AddedMaterialWeight, "addedWt", 0, maxWeight),
		sanitize.ValidRange(r.MaterialCost, "materialCost", 0, maxMoney),
		sanitize.ValidRange(r.MakingCharge, "makingCharge", 0, maxMoney),
		sanitize.ValidRange(r.TotalCost, "totalCost", 0, maxMoney),
	} {
		if check != nil {
			return storage.RepairOrder{}, check
		}
	}

	return r, nil
}

func initialRepairFields() map[string]string {
	return map[string]string{
		"date":           sanitize.Today(),
		"material":       "",
		"addedWt":        "0",
		"materialCost":   "0",
		"makingCharge":   "0",
		"totalCost":      "0",
		"deliveryDate":   "",
		"assignedTo":     "",
		"status":         "On process",
		"deliveryStatus": "Pending",
	}
}

func validateRepairStep(f map[string]string, step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if f["material"] == "" {
			errs["material"] = "Material is required"
		}
	case 2:
		if f["materialCost"] == "" || !sanitize.IsNumeric(f["materialCost"]) || sanitize.ParseAmount(f["materialCost"]) < 0 {
			errs["materialCost"] = "Valid material cost is required"
		}
		if f["makingCharge"] == "" || !sanitize.IsNumeric(f["makingCharge"]) || sanitize.ParseAmount(f["makingCharge"]) < 0 {
			errs["makingCharge"] = "Valid making charge is required"
		}
	case 3:
		if f["status"] == "" {
			errs["status"] = "Status is required"
		}
		if f["deliveryStatus"] == "" {
			errs["deliveryStatus"] = "Delivery status is required"
		}
	}

	return errs
}

func validateRepairSubmit(f map[string]string) map[string]string {
	errs := map[string]string{}
	for _, name := range []string{"addedWt", "materialCost", "makingCharge", "totalCost"} {
		if !sanitize.IsNumeric(f[name]) {
			errs[name] = "Must be a number"
		}
	}
	return errs
}

// recomputeRepair keeps totalCost = materialCost + makingCharge.
func recomputeRepair(f map[string]string) {
	total := sanitize.ParseAmount(f["materialCost"]) + sanitize.ParseAmount(f["makingCharge"])
	f["totalCost"] = formatAmount(total)
}
