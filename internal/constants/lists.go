package constants

// Materials accepted for orders and repairs.
const (
	MaterialGold   = "Gold"
	MaterialSilver = "Silver"
	MaterialOther  = "Other"
)

var Materials = []string{MaterialGold, MaterialSilver, MaterialOther}

// Order types. Exchange types unlock the exchange/deduct weight fields.
const (
	OrderTypeNew               = "New Order"
	OrderTypeExchange          = "Exchange Order"
	OrderTypeNewReadymade      = "New Readymade"
	OrderTypeExchangeReadymade = "Exchange Readymade"
)

var OrderTypes = []string{
	OrderTypeNew,
	OrderTypeExchange,
	OrderTypeNewReadymade,
	OrderTypeExchangeReadymade,
}

var OrderStatuses = []string{"Pending", "On process", "Delivered", "Cancelled"}

// Repair lifecycle.
const (
	RepairStatusOnProcess = "On process"
	RepairStatusComplete  = "Complete"

	DeliveryStatusPending   = "Pending"
	DeliveryStatusDelivered = "Delivered"
)

var RepairStatuses = []string{RepairStatusOnProcess, RepairStatusComplete}
var DeliveryStatuses = []string{DeliveryStatusPending, DeliveryStatusDelivered}
