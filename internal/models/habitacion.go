package models

type Habitacion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Numero         string  `gorm:"size:10;not null" json:"numero"`
	Tipo           string  `gorm:"size:50;not null" json:"tipo"`
	PrecioPorNoche float64 `gorm:"column:precio_por_noche;type:decimal(10,2);not null" json:"precioPorNoche"`
	Estado         string  `gorm:"size:20;not null;default:'Disponible'" json:"estado"`
}

func (Habitacion) TableName() string {
	return "habitaciones"
}
