package model

// WealthIdea is one structured suggestion from the advisor service.
type WealthIdea struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	Difficulty             string   `json:"difficulty"`
	PotentialMonthlyIncome string   `json:"potentialMonthlyIncome"`
	Steps                  []string `json:"steps"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of the advisor conversation. History is passed as an
// ordered sequence of these.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
