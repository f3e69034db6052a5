package model

type Assignee struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Prename string `gorm:"not null" json:"prename"`
	Email   string `gorm:"not null" json:"email"`
}

// DisplayName renders "<prename> <name>".
func (a Assignee) DisplayName() string {
	return a.Prename + " " + a.Name
}
