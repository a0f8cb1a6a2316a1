package db_models

type ProjectState string

const (
	ProjectUnpublished ProjectState = "unpublished"
	ProjectPublished   ProjectState = "published"
	ProjectArchived    ProjectState = "archived"
)

// Project is a fundraising campaign. Funding progress is never stored on the
// record; it is derived from the project's confirmed transactions on read.
// Projects with transactions are never deleted, only archived.
type Project struct {
	BaseModel
	Slug string `gorm:"uniqueIndex"`

	NameUK             string
	NameEN             string
	DescriptionUK      string
	DescriptionEN      string
	ShortDescriptionUK string
	ShortDescriptionEN string
	PlannedSpendingsUK string
	PlannedSpendingsEN string
	ActualSpendingsUK  string
	ActualSpendingsEN  string

	Image    string
	Amount   float64 // funding target
	Currency string       `gorm:"size:3"`
	State    ProjectState `gorm:"index"`
}
