package entity

// Chat roles as the generative API expects them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of the librarian conversation.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
