package ds

import (
	"fmt"
	"time"
)

// @Schema(description="Cruise model: a sailing operated by a ship")
type Cruise struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:text" json:"name"`
	ShipID    int64     `gorm:"column:ship_id;not null;index" json:"ship_id"`
	Ship      Ship      `gorm:"foreignKey:ShipID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ship"`
	DepartsOn time.Time `gorm:"column:departs_on" json:"departs_on"`
	Nights    int       `gorm:"column:nights;type:integer" json:"nights"`
}

func (Cruise) TableName() string {
	return "cruise"
}

func (c Cruise) String() string {
	return fmt.Sprintf("%d, %s, %d", c.ID, c.Name, c.ShipID)
}
