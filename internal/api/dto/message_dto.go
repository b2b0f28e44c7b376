package dto

// CreateMessageRequest payload for department-tagged notes.
type CreateMessageRequest struct {
	Message           string `json:"message"`
	MessageDepartment string `json:"messageDepartment"`
}
