// Package model defines the persisted records of the support rota panel.
package model

// User roles as stored in users.type.
const (
	TypeDeveloper = "developer"
	TypeAdmin     = "admin"
)

// User is an account row. Password holds the bcrypt hash and is never
// serialized; read paths that return users to callers clear it.
type User struct {
	Username        string `json:"username" gorm:"primaryKey"`
	Password        string `json:"-"`
	DevelopmentTeam string `json:"developmentTeam" gorm:"column:development_team"`
	Type            string `json:"type"`
	Experience      string `json:"experience"`
}

// DevelopmentTeam is a named grouping users belong to. Membership lives on
// the user row; deleting a team does not cascade.
type DevelopmentTeam struct {
	Name string `json:"name" gorm:"primaryKey"`
}

// SupportTeam is one rota slot: an inclusive date range with up to two
// developers on duty. Dates are stored as YYYY-MM-DD strings; an unassigned
// developer field is the empty string.
type SupportTeam struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	DateStart  string `json:"dateStart" gorm:"column:date_start"`
	DateEnd    string `json:"dateEnd" gorm:"column:date_end"`
	Developer1 string `json:"developer1" gorm:"column:developer_1"`
	Developer2 string `json:"developer2" gorm:"column:developer_2"`
}

// TableName keeps the legacy singular table name.
func (SupportTeam) TableName() string {
	return "support_team"
}

// Unavailability marks a user as unable to take rota duty over a date range.
type Unavailability struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string `json:"username"`
	DateStart string `json:"dateStart" gorm:"column:date_start"`
	DateEnd   string `json:"dateEnd" gorm:"column:date_end"`
}

// TableName keeps the legacy singular table name.
func (Unavailability) TableName() string {
	return "unavailability"
}
