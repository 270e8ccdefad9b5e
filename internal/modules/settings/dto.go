package settings

type SettingInput struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type BulkUpdateRequest struct {
	Settings []SettingInput `json:"settings" binding:"required,min=1,dive"`
}

type UpdateValueRequest struct {
	Value       string `json:"value"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
