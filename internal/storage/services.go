package storage

// Piercing and other miscellaneous services are append-only: there is no
// update operation for them anywhere in the API.

type PiercingService struct {
	ID        int64  `json:"id"`
	Date      int64  `json:"date"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
	Remarks   string `json:"remarks"`
	Timestamp int64  `json:"timestamp"`
}

type OtherService struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
	Remarks   string `json:"remarks"`
	Timestamp int64  `json:"timestamp"`
}

type PiercingStats struct {
	TotalCount  int64 `json:"total_count"`
	TotalAmount int64 `json:"total_amount"`
}

type OtherServiceStats struct {
	TotalCount  int64 `json:"total_count"`
	TotalAmount int64 `json:"total_amount"`
}
