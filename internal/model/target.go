package model

// Target is an annual goal. Current is maintained server-side through signed
// delta updates; the client never treats it as the source of the earned total.
type Target struct {
	UserID      string  `json:"userId"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Period      string  `json:"period"`
	TargetDate  string  `json:"targetDate"`
	Progress    string  `json:"progress"`
	IsCompleted bool    `json:"isCompleted"`
	CompletedAt string  `json:"completedAt"`
}
