package comment

type CreateCommentRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile"`
	Content    string `json:"content" binding:"required"`
	Rating     *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
