package storage

// Order is a customer order as stored and as sent over the wire.
// Weights are hundredths of a gram, money fields are minor currency units,
// DeliveryDate and Timestamp are nanoseconds since epoch (0 = not set).
type Order struct {
	BillNo              int64  `json:"bill_no"`
	CustomerName        string `json:"customer_name"`
	DeliveryContact     string `json:"delivery_contact"`
	Material            string `json:"material"`
	MaterialDescription string `json:"material_description"`
	OrderType           string `json:"order_type"`
	ExchangeWeight      int64  `json:"exchange_weight"`
	DeductWeight        int64  `json:"deduct_weight"`
	AddedWeight         int64  `json:"added_weight"`
	TotalWeight         int64  `json:"total_weight"`
	RatePerGram         int64  `json:"rate_per_gram"`
	MaterialCost        int64  `json:"material_cost"`
	MakingCharge        int64  `json:"making_charge"`
	OtherCharge         int64  `json:"other_charge"`
	TotalCost           int64  `json:"total_cost"`
	DeliveryDate        int64  `json:"delivery_date"`
	AssignedTo          *int64 `json:"assigned_to,omitempty"`
	Status              string `json:"status"`
	Remarks             string `json:"remarks"`
	Timestamp           int64  `json:"timestamp"`
}

// OrderStats are computed by the storage layer, never by readers.
type OrderStats struct {
	TotalOrders         int64 `json:"total_orders"`
	TotalExchangeWeight int64 `json:"total_exchange_weight"`
	TotalDeductWeight   int64 `json:"total_deduct_weight"`
	TotalAddedWeight    int64 `json:"total_added_weight"`
	TotalCost           int64 `json:"total_cost"`
}
