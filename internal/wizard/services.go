package wizard

import (
	"context"
	"strings"

	"jewel-shop/internal/sanitize"
	"jewel-shop/internal/storage"
)

// Piercing and other-service entries are two-step append-only flows; there
// is no edit mode because the store exposes no update for them.

type PiercingService interface {
	AddPiercingService(ctx context.Context, p storage.PiercingService) (int64, error)
}

type OtherService interface {
	AddOtherService(ctx context.Context, o storage.OtherService) (int64, error)
}

type PiercingWizard struct {
	*Form
	svc PiercingService
}

func NewPiercingWizard(svc PiercingService) *PiercingWizard {
	return &PiercingWizard{
		Form: newForm(2, map[string]string{
			"date":    sanitize.Today(),
			"name":    "",
			"phone":   "",
			"amount":  "",
			"remarks": "",
		}, validatePiercingStep, nil),
		svc: svc,
	}
}

func (w *PiercingWizard) Submit(ctx context.Context) (int64, error) {
	if !w.validateAll(nil) {
		return 0, ErrValidation
	}

	p := storage.PiercingService{
		Date:    sanitize.DateToNanos(w.fields["date"]),
		Name:    strings.TrimSpace(w.fields["name"]),
		Phone:   strings.TrimSpace(w.fields["phone"]),
		Amount:  sanitize.CurrencyToMinor(w.fields["amount"]),
		Remarks: w.fields["remarks"],
	}
	if err := sanitize.ValidRange(p.Amount, "amount", 0, maxMoney); err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitting

	id, err := w.svc.AddPiercingService(ctx, p)
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitted
	return id, nil
}

func validatePiercingStep(f map[string]string, step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if f["date"] == "" {
			errs["date"] = "Date is required"
		}
	case 2:
		if f["amount"] == "" || sanitize.ParseAmount(f["amount"]) <= 0 {
			errs["amount"] = "Valid amount is required"
		}
	}

	return errs
}

type OtherWizard struct {
	*Form
	svc OtherService
}

func NewOtherWizard(svc OtherService) *OtherWizard {
	return &OtherWizard{
		Form: newForm(2, map[string]string{
			"name":    "",
			"phone":   "",
			"amount":  "",
			"remarks": "",
		}, validateOtherStep, nil),
		svc: svc,
	}
}

func (w *OtherWizard) Submit(ctx context.Context) (int64, error) {
	if !w.validateAll(nil) {
		return 0, ErrValidation
	}

	o := storage.OtherService{
		Name:    strings.TrimSpace(w.fields["name"]),
		Phone:   strings.TrimSpace(w.fields["phone"]),
		Amount:  sanitize.CurrencyToMinor(w.fields["amount"]),
		Remarks: w.fields["remarks"],
	}
	if err := sanitize.ValidRange(o.Amount, "amount", 0, maxMoney); err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitting

	id, err := w.svc.AddOtherService(ctx, o)
	if err != nil {
		w.fail(err.Error())
		return 0, err
	}

	w.status = StatusSubmitted
	return id, nil
}

func validateOtherStep(f map[string]string, step int) map[string]string {
	errs := map[string]string{}

	if step == 2 {
		if f["amount"] == "" || sanitize.ParseAmount(f["amount"]) <= 0 {
			errs["amount"] = "Valid amount is required"
		}
	}

	return errs
}
