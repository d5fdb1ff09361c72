package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	cleared int
}

func (f *fakeCache) ClearCache() { f.cleared++ }

func TestCoordinatorTransitions(t *testing.T) {
	c := NewCoordinator(nil)
	assert.Equal(t, ViewDashboard, c.View())

	c.NewOrder()
	assert.Equal(t, ViewWizard, c.View())
	assert.Zero(t, c.EditBillNo())

	c.EditOrder(42)
	assert.Equal(t, ViewWizard, c.View())
	assert.Equal(t, int64(42), c.EditBillNo())

	c.WizardDone()
	assert.Equal(t, ViewOrders, c.View())
	assert.Zero(t, c.EditBillNo(), "leaving the wizard drops edit state")

	c.ShowDashboard()
	assert.Equal(t, ViewDashboard, c.View())
}

func TestCoordinatorLogoutClearsCache(t *testing.T) {
	cache := &fakeCache{}
	c := NewCoordinator(cache)

	c.EditOrder(7)
	c.Logout()

	assert.Equal(t, 1, cache.cleared)
	assert.Equal(t, ViewDashboard, c.View())
	assert.Zero(t, c.EditBillNo())
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "dashboard", ViewDashboard.String())
	assert.Equal(t, "wizard", ViewWizard.String())
	assert.Equal(t, "orders", ViewOrders.String())
	assert.Equal(t, "repairs", ViewRepairs.String())
	assert.Equal(t, "services", ViewServices.String())
	assert.Equal(t, "unknown", View(99).String())
}
