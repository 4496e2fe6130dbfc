package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/authordash/internal/domain"
)

type BookRequestDTO struct {
	Title            string                  `json:"title" validate:"required,max=200" example:"Monsoon Letters"`
	Price            decimal.Decimal         `json:"price" swaggertype:"number" example:"299"`
	Stock            int                     `json:"stock" validate:"min=0" example:"40"`
	Category         string                  `json:"category" validate:"max=100" example:"Fiction"`
	ISBN             string                  `json:"isbn" validate:"omitempty,isbn" example:"9780306406157"`
	MarketplaceLinks domain.MarketplaceLinks `json:"marketplaceLinks"`
	Publication      domain.Publication      `json:"publication"`
}

func (r BookRequestDTO) Validate() error {
	if err := Validate(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	return nil
}

func (r BookRequestDTO) ToDomain() domain.Book {
	return domain.Book{
		Title:            r.Title,
		Price:            r.Price,
		Stock:            r.Stock,
		Category:         r.Category,
		ISBN:             r.ISBN,
		MarketplaceLinks: r.MarketplaceLinks,
		Publication:      r.Publication,
	}
}

type UserUpdateRequestDTO struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=author admin"`
}

func (r UserUpdateRequestDTO) ToDomain() domain.User {
	return domain.User{Name: r.Name, Email: r.Email, Role: r.Role}
}

type RoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=author admin" example:"admin"`
}

type MarkAllReadResponseDTO struct {
	Marked int `json:"marked" example:"3"`
}
