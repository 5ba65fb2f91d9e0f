package models

type MetodoPago struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
}

func (MetodoPago) TableName() string {
	return "metodos_pago"
}
