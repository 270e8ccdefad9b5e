package visitor

type CreateVisitorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile"`
	Verified bool   `json:"verified"`
}

type UpdateVisitorRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Mobile   *string `json:"mobile"`
	Verified *bool   `json:"verified"`
}
