package models

type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre             string `gorm:"size:50;not null" json:"nombre"`
	Apellido           string `gorm:"size:50;not null" json:"apellido"`
	Email              string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefono           string `gorm:"size:15;not null" json:"telefono"`
	DocumentoIdentidad string `gorm:"column:documento_identidad;size:20;uniqueIndex;not null" json:"documentoIdentidad"`
}
