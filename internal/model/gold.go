package model

// GoldClick is the payload of a successful earn click. RemainingSeconds is the
// server-enforced wait before the next click.
type GoldClick struct {
	UserID           string  `json:"userId"`
	TotalGold        float64 `json:"totalGold"`
	TodayGold        float64 `json:"todayGold"`
	GoldEarned       float64 `json:"goldEarned"`
	RemainingSeconds int     `json:"remainingSeconds"`
}

type GoldDetail struct {
	GoldNum    float64 `json:"goldNum"`
	CreateTime string  `json:"createTime"`
}

type GoldInfo struct {
	UserID        string       `json:"userId"`
	TotalGold     float64      `json:"totalGold"`
	TodayGold     float64      `json:"todayGold"`
	LastClickTime string       `json:"lastClickTime"`
	Details       []GoldDetail `json:"details"`
}

type MonthlyGold struct {
	LastMonthGold    float64 `json:"lastMonthGold"`
	CurrentMonthGold float64 `json:"currentMonthGold"`
}

// Withdrawal is immutable once created; Amount is in yuan.
type Withdrawal struct {
	WithdrawalID  string  `json:"withdrawalId"`
	AlipayAccount string  `json:"alipayAccount"`
	AlipayName    string  `json:"alipayName"`
	Amount        float64 `json:"amount"`
	CreateTime    string  `json:"createTime"`
}
