package model

// Ticket stays unresolved (IsWinning false, empty PrizeLevel) until a draw
// assigns an outcome to it.
type Ticket struct {
	ID           string  `json:"_id"`
	UserID       string  `json:"uid"`
	TicketNumber string  `json:"ticketNumber"`
	BuyDate      string  `json:"buyDate"`
	DrawDate     string  `json:"drawDate"`
	IsWinning    bool    `json:"isWinning"`
	PrizeLevel   string  `json:"prizeLevel"`
	PrizeAmount  float64 `json:"prizeAmount"`
}

type BuyTickets struct {
	UserID        string   `json:"userId"`
	Tickets       []Ticket `json:"tickets"`
	TotalCost     float64  `json:"totalCost"`
	RemainingGold float64  `json:"remainingGold"`
}

type DrawResult struct {
	DrawDate       string   `json:"drawDate"`
	WinningNumbers []string `json:"winningNumbers"`
	TotalPool      float64  `json:"totalPool"`
	TotalTickets   int      `json:"totalTickets"`
	IsDrawn        bool     `json:"isDrawn"`
}

type LotteryStats struct {
	TotalPool      float64 `json:"totalPool"`
	TotalTickets   int     `json:"totalTickets"`
	Participants   int     `json:"participants"`
	LatestDrawDate string  `json:"latestDrawDate"`
}
