package models

import "github.com/m04kA/RET-CalendarService/internal/domain"

// ApartmentBasic краткая карточка квартиры для списка каталога
type ApartmentBasic struct {
	Name    string
	Street  string
	City    string
	RefCode int64
}

// ApartmentListResponse список кратких карточек каталога
type ApartmentListResponse struct {
	Apartments []ApartmentBasic
}

// ApartmentInfo полная карточка квартиры без деталей квалификации.
// IsQualification сообщает, заданы ли требования к арендатору,
// сами требования отдаются отдельной операцией.
type ApartmentInfo struct {
	Apartment       domain.Apartment
	IsQualification bool
}

// FromDomainApartmentBasic конвертирует квартиру в краткую карточку
func FromDomainApartmentBasic(apt domain.Apartment) ApartmentBasic {
	return ApartmentBasic{
		Name:    apt.Name,
		Street:  apt.Street,
		City:    apt.City,
		RefCode: apt.ID,
	}
}

// FromDomainApartmentInfo конвертирует квартиру в полную карточку,
// убирая детали квалификации
func FromDomainApartmentInfo(apt domain.Apartment) ApartmentInfo {
	info := ApartmentInfo{
		Apartment:       apt,
		IsQualification: apt.HasQualification(),
	}
	info.Apartment.Qualification = nil
	return info
}
