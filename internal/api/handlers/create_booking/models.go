package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-PartyBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// AddOnRequest выбранное дополнение
type AddOnRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity,omitempty" validate:"min=0"`
}

// DetailsRequest общие поля праздника
type DetailsRequest struct {
	PackageID int64          `json:"packageId" validate:"required,gt=0"`
	Location  string         `json:"location" validate:"required"`
	EventDate string         `json:"eventDate" validate:"required"` // "2026-11-14"
	StartTime string         `json:"startTime" validate:"required"` // "10:00"
	Guests    int            `json:"guests" validate:"required,gt=0"`
	AddOns    []AddOnRequest `json:"addOns,omitempty" validate:"dive"`
	Notes     *string        `json:"notes,omitempty"`
}

// CreateBookingRequest HTTP request model для опекуна
type CreateBookingRequest struct {
	ChildIDs []int64 `json:"childIds" validate:"required,min=1,dive,gt=0"`
	DetailsRequest
}

// GuestRequest контакты гостя
type GuestRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	ChildName      string `json:"childName" validate:"required"`
	ChildBirthDate string `json:"childBirthDate,omitempty"`
}

// CreateGuestBookingRequest HTTP request model для гостя без аккаунта
type CreateGuestBookingRequest struct {
	Guest GuestRequest `json:"guest"`
	DetailsRequest
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID        int64       `json:"bookingId"`
	Reference        string      `json:"reference"`
	Status           string      `json:"status"`
	PaymentStatus    string      `json:"paymentStatus"`
	StartTime        string      `json:"startTime"`
	EndTime          string      `json:"endTime"`
	Subtotal         money.Cents `json:"subtotal"`
	CleaningFee      money.Cents `json:"cleaningFee"`
	Total            money.Cents `json:"total"`
	DepositAmount    money.Cents `json:"depositAmount"`
	BalanceRemaining money.Cents `json:"balanceRemaining"`
}

// toDetails парсит дату и время
func (r *DetailsRequest) toDetails() (createBooking.Details, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return createBooking.Details{}, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return createBooking.Details{}, err
	}

	addOns := make([]domain.AddOnSelection, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, domain.AddOnSelection{Code: a.Code, Quantity: a.Quantity})
	}

	return createBooking.Details{
		PackageID: r.PackageID,
		Location:  r.Location,
		EventDate: eventDate,
		StartTime: startTime,
		Guests:    r.Guests,
		AddOns:    addOns,
		Notes:     r.Notes,
	}, nil
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(guardianID int64) (*createBooking.Request, error) {
	details, err := r.toDetails()
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		GuardianID: guardianID,
		ChildIDs:   r.ChildIDs,
		Details:    details,
	}, nil
}

func (r *CreateGuestBookingRequest) ToUseCaseRequest() (*createBooking.GuestRequest, error) {
	details, err := r.toDetails()
	if err != nil {
		return nil, err
	}
	return &createBooking.GuestRequest{
		Contact: domain.GuestContact{
			FirstName:      r.Guest.FirstName,
			LastName:       r.Guest.LastName,
			Email:          r.Guest.Email,
			Phone:          r.Guest.Phone,
			ChildName:      r.Guest.ChildName,
			ChildBirthDate: r.Guest.ChildBirthDate,
		},
		Details: details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:        resp.BookingID,
		Reference:        resp.Reference,
		Status:           string(resp.Status),
		PaymentStatus:    string(resp.PaymentStatus),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Subtotal:         resp.Subtotal,
		CleaningFee:      resp.CleaningFee,
		Total:            resp.Total,
		DepositAmount:    resp.DepositAmount,
		BalanceRemaining: resp.BalanceRemaining,
	}
}
