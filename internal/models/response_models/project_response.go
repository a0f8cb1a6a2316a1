package response_models

type ProjectResponse struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	State    string  `json:"state"`
	Image    string  `json:"image"`

	NameEN             string `json:"name_en"`
	DescriptionEN      string `json:"description_en"`
	ShortDescriptionEN string `json:"short_description_en"`
	PlannedSpendingsEN string `json:"planned_spendings_en"`
	ActualSpendingsEN  string `json:"actual_spendings_en"`

	NameUK             string `json:"name_uk"`
	DescriptionUK      string `json:"description_uk"`
	ShortDescriptionUK string `json:"short_description_uk"`
	PlannedSpendingsUK string `json:"planned_spendings_uk"`
	ActualSpendingsUK  string `json:"actual_spendings_uk"`

	CreatedAt int64 `json:"created_at"`

	// Derived funding figures, recomputed on every read.
	AmountFunded float64 `json:"amount_funded"`
	MonthFunded  float64 `json:"month_funded"`
	Bakers       int     `json:"bakers"`
	Completed    bool    `json:"completed"`
}
