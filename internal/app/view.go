// Package app owns the top-level navigation state: one explicit view value
// with transition methods, instead of ambient mutable state.
package app

type View int

const (
	ViewDashboard View = iota
	ViewWizard
	ViewOrders
	ViewRepairs
	ViewServices
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewWizard:
		return "wizard"
	case ViewOrders:
		return "orders"
	case ViewRepairs:
		return "repairs"
	case ViewServices:
		return "services"
	default:
		return "unknown"
	}
}

// CacheClearer is what logout needs from the record client.
type CacheClearer interface {
	ClearCache()
}

type Coordinator struct {
	view        View
	editBillNo  int64 // 0 = create mode
	cacheClient CacheClearer
}

func NewCoordinator(cacheClient CacheClearer) *Coordinator {
	return &Coordinator{view: ViewDashboard, cacheClient: cacheClient}
}

func (c *Coordinator) View() View        { return c.view }
func (c *Coordinator) EditBillNo() int64 { return c.editBillNo }

func (c *Coordinator) ShowDashboard() {
	c.view = ViewDashboard
	c.editBillNo = 0
}

func (c *Coordinator) ShowOrders() {
	c.view = ViewOrders
	c.editBillNo = 0
}

func (c *Coordinator) NewOrder() {
	c.view = ViewWizard
	c.editBillNo = 0
}

func (c *Coordinator) EditOrder(billNo int64) {
	c.view = ViewWizard
	c.editBillNo = billNo
}

// WizardDone returns to the order list after a successful submit.
func (c *Coordinator) WizardDone() {
	c.ShowOrders()
}

// Logout drops all cached reads along with the session.
func (c *Coordinator) Logout() {
	if c.cacheClient != nil {
		c.cacheClient.ClearCache()
	}
	c.ShowDashboard()
}
