package dto

// CreateTicketRequest carries the submission fields. All are required.
type CreateTicketRequest struct {
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	CreatorEmail   string `json:"creatorEmail"`
	UserCompany    string `json:"userCompany"`
	UserDepartment string `json:"userDepartment"`
	UserMessage    string `json:"userMessage"`
}

// CannotResolveRequest carries the member's reason for not resolving.
type CannotResolveRequest struct {
	MemberMessageToAdmin string `json:"memberMessageToAdmin"`
}

// EditTicketRequest carries the requester's overwrites.
type EditTicketRequest struct {
	UserDepartment string `json:"userDepartment"`
	UserMessage    string `json:"userMessage"`
}

// DeleteTicketRequest carries the soft-delete reason.
type DeleteTicketRequest struct {
	ReasonForDeleting string `json:"reasonForDeleting"`
}

// AssignMemberRequest carries a manual assignment overwrite.
type AssignMemberRequest struct {
	AssignedMember string `json:"assignedMember"`
}
