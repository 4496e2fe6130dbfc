package dto

import "github.com/GlebRadaev/authordash/internal/domain"

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"author@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"rkapoor"`
	Name     string `json:"name" validate:"required,max=100" example:"Riya Kapoor"`
	Email    string `json:"email" validate:"required,email" example:"author@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

type SessionResponseDTO struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    *domain.Profile `json:"user,omitempty"`
}

type ProfileUpdateRequestDTO struct {
	Name        string         `json:"name" validate:"required,max=100"`
	PhoneNumber string         `json:"phoneNumber" validate:"omitempty,numeric,min=7,max=15" example:"9876543210"`
	Address     domain.Address `json:"address"`
	Bio         string         `json:"bio" validate:"max=1000"`
}

func (r ProfileUpdateRequestDTO) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Details:     domain.ProfileDetails{Bio: r.Bio},
	}
}

type KYCUpdateRequestDTO struct {
	AccountNumber string `json:"accountNumber" validate:"omitempty,numeric,min=9,max=18" example:"123456789012"`
	IFSCCode      string `json:"ifscCode" validate:"omitempty,len=11,alphanum" example:"SBIN0001234"`
	BankName      string `json:"bankName" validate:"max=100" example:"State Bank of India"`
	AadhaarNumber string `json:"aadhaarNumber" validate:"omitempty,len=12,numeric" example:"123412341234"`
	PANNumber     string `json:"panNumber" validate:"omitempty,len=10,alphanum" example:"ABCDE1234F"`
}

func (r KYCUpdateRequestDTO) ToDomain() domain.KYCUpdate {
	return domain.KYCUpdate{
		BankAccount: domain.BankAccount{
			AccountNumber: r.AccountNumber,
			IFSCCode:      r.IFSCCode,
			BankName:      r.BankName,
		},
		KYCInformation: domain.KYCInformation{
			AadhaarNumber: r.AadhaarNumber,
			PANNumber:     r.PANNumber,
		},
	}
}
