package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre       string `gorm:"size:50;not null" json:"nombre"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Rol          string `gorm:"size:20;not null" json:"rol"`
	Estado       bool   `gorm:"default:true" json:"estado"`

	CreadoEn      time.Time  `gorm:"column:creado_en;autoCreateTime" json:"creadoEn"`
	ActualizadoEn *time.Time `gorm:"column:actualizado_en" json:"actualizadoEn"`
}
