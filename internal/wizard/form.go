// Package wizard holds the multi-step form state for the order, repair and
// service entry flows. A form is a flat map of field name to string; parsing
// into wire values is deferred to submit time. Derived fields are recomputed
// by a single pure reducer after every mutation, so a dependent value can
// never drift from its inputs and can never feed back into them.
package wizard

import "errors"

// ErrValidation is returned by Submit when local validation failed; no
// remote call has been made and per-field errors are populated.
var ErrValidation = errors.New("form has validation errors")

type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSubmitted
	StatusFailed
)

// validateFunc returns the errors for the fields relevant to one step.
type validateFunc func(fields map[string]string, step int) map[string]string

// recomputeFunc overwrites derived fields in place.
type recomputeFunc func(fields map[string]string)

type Form struct {
	totalSteps int
	step       int
	fields     map[string]string
	errors     map[string]string
	banner     string
	status     Status
	validate   validateFunc
	recompute  recomputeFunc
}

func newForm(totalSteps int, initial map[string]string, validate validateFunc, recompute recomputeFunc) *Form {
	f := &Form{
		totalSteps: totalSteps,
		step:       1,
		fields:     make(map[string]string, len(initial)),
		errors:     map[string]string{},
		status:     StatusEditing,
		validate:   validate,
		recompute:  recompute,
	}
	for k, v := range initial {
		f.fields[k] = v
	}

	if f.recompute != nil {
		f.recompute(f.fields)
	}

	return f
}

func (f *Form) Step() int       { return f.step }
func (f *Form) TotalSteps() int { return f.totalSteps }
func (f *Form) Status() Status  { return f.status }
func (f *Form) Banner() string  { return f.banner }

func (f *Form) Field(name string) string { return f.fields[name] }

func (f *Form) Fields() map[string]string {
	out := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}

func (f *Form) FieldError(name string) string { return f.errors[name] }

func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// SetField overwrites one field, clears its error and any save-failed
// banner, and reruns the reducer.
func (f *Form) SetField(name, value string) {
	f.fields[name] = value
	delete(f.errors, name)
	f.banner = ""
	if f.status == StatusFailed {
		f.status = StatusEditing
	}

	if f.recompute != nil {
		f.recompute(f.fields)
	}
}

// Advance validates the current step only. On success the step increments,
// clamped to the last step; on failure the step stays and errors are set.
func (f *Form) Advance() bool {
	errs := f.validate(f.fields, f.step)
	f.errors = errs
	if len(errs) > 0 {
		return false
	}

	if f.step < f.totalSteps {
		f.step++
	}
	return true
}

// Retreat never validates.
func (f *Form) Retreat() {
	if f.step > 1 {
		f.step--
	}
}

// validateAll runs every step's rules plus extra submit-time rules and
// reports whether the form may be sent.
func (f *Form) validateAll(extra func(fields map[string]string) map[string]string) bool {
	errs := map[string]string{}
	for step := 1; step <= f.totalSteps; step++ {
		for field, msg := range f.validate(f.fields, step) {
			errs[field] = msg
		}
	}
	if extra != nil {
		for field, msg := range extra(f.fields) {
			errs[field] = msg
		}
	}

	f.errors = errs
	return len(errs) == 0
}

func (f *Form) fail(message string) {
	f.status = StatusFailed
	f.banner = message
}
