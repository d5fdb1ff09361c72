package storage

// RepairOrder is a repair job. TotalCost arrives precomputed from the form
// (material cost + making charge) and is stored verbatim.
type RepairOrder struct {
	RepairID            int64  `json:"repair_id"`
	Date                int64  `json:"date"`
	Material            string `json:"material"`
	AddedMaterialWeight int64  `json:"added_material_weight"`
	MaterialCost        int64  `json:"material_cost"`
	MakingCharge        int64  `json:"making_charge"`
	TotalCost           int64  `json:"total_cost"`
	DeliveryDate        int64  `json:"delivery_date"`
	AssignedTo          *int64 `json:"assigned_to,omitempty"`
	Status              string `json:"status"`
	DeliveryStatus      string `json:"delivery_status"`
	Timestamp           int64  `json:"timestamp"`
}

type RepairOrderStats struct {
	TotalOrders      int64 `json:"total_orders"`
	TotalAddedWeight int64 `json:"total_added_weight"`
	TotalCost        int64 `json:"total_cost"`
}
