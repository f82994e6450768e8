package model

type Record struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"uid"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CreateTime  string  `json:"createTime"`
}

// Total sums records of one category type over a period.
type Total struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type DailyStatistic struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
