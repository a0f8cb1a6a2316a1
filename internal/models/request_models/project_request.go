package request_models

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type UpdateProjectRequest struct {
	ID       string  `json:"id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gte=0"`
	Currency string  `json:"currency" binding:"required,oneof=UAH"`
	State    string  `json:"state" binding:"required,oneof=unpublished published archived"`
	Image    string  `json:"image" binding:"required,url"`

	NameEN             string `json:"name_en" binding:"required"`
	DescriptionEN      string `json:"description_en" binding:"required"`
	ShortDescriptionEN string `json:"short_description_en" binding:"required"`
	PlannedSpendingsEN string `json:"planned_spendings_en" binding:"required"`
	ActualSpendingsEN  string `json:"actual_spendings_en" binding:"required"`

	NameUK             string `json:"name_uk" binding:"required"`
	DescriptionUK      string `json:"description_uk" binding:"required"`
	ShortDescriptionUK string `json:"short_description_uk" binding:"required"`
	PlannedSpendingsUK string `json:"planned_spendings_uk" binding:"required"`
	ActualSpendingsUK  string `json:"actual_spendings_uk" binding:"required"`
}
