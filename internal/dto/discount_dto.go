package dto

type DiscountCodeResponse struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"`
}
