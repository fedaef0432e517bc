package dto

type CounterpartyDTO struct {
	UserID      int64  `json:"user_id" example:"193847561"`
	DisplayName string `json:"display_name" example:"Bob"`
	Total       string `json:"total" example:"42.50"`
}

type DebtsResponseDTO struct {
	OwedToMe      []CounterpartyDTO `json:"owed_to_me"`
	IOwe          []CounterpartyDTO `json:"i_owe"`
	TotalOwedToMe string            `json:"total_owed_to_me" example:"42.50"`
	TotalIOwe     string            `json:"total_i_owe" example:"10.00"`
	Net           string            `json:"net" example:"32.50"`
}

type BalanceResponseDTO struct {
	UserID      int64  `json:"user_id" example:"193847561"`
	DisplayName string `json:"display_name" example:"Bob"`
	Net         string `json:"net" example:"-8.00"`
}
