package ds

import "fmt"

// @Schema(description="Ship model representing a cruise ship")
type Ship struct {
	ID       int64  `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"column:name;type:text" json:"name"`
	Tonnage  int    `gorm:"column:tonnage;type:integer" json:"tonnage"`
	PhotoURL string `gorm:"column:photo_url;type:text" json:"photo_url,omitempty"`
}

func (Ship) TableName() string {
	return "ship"
}

// String formats the ship as "id, name, tonnage".
func (s Ship) String() string {
	return fmt.Sprintf("%d, %s, %d", s.ID, s.Name, s.Tonnage)
}
