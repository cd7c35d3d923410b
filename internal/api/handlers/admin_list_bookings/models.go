package admin_list_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует фильтры из query параметров. Пустые параметры не фильтруют
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if location := query.Get("location"); location != "" {
		req.Location = &location
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
