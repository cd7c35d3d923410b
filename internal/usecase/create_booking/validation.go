package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// validateDetails валидирует общие параметры праздника
func validateDetails(d *Details, maxGuests int) error {
	if d.PackageID <= 0 {
		return fmt.Errorf("%w: packageId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	if d.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if d.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := d.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if d.Guests <= 0 || d.Guests > maxGuests {
		return fmt.Errorf("%w: guests must be within 1..%d", ErrInvalidInput, maxGuests)
	}

	for _, a := range d.AddOns {
		if strings.TrimSpace(a.Code) == "" {
			return fmt.Errorf("%w: add-on code is required", ErrInvalidInput)
		}
	}

	if d.Notes != nil && len(*d.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateContact валидирует контакты гостя
func validateContact(c *domain.GuestContact) error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: guest email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(c.ChildName) == "" {
		return fmt.Errorf("%w: child name is required", ErrInvalidInput)
	}

	if c.ChildBirthDate != "" {
		if _, err := time.Parse(domain.DateFormat, c.ChildBirthDate); err != nil {
			return fmt.Errorf("%w: invalid childBirthDate: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateLocation проверяет площадку по списку из конфигурации
func validateLocation(location string, supported []string) error {
	for _, l := range supported {
		if l == location {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedLocation, location)
}

// validateChildren проверяет, что все дети принадлежат клиенту
func validateChildren(requested, owned []int64) error {
	own := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		own[id] = struct{}{}
	}

	for _, id := range requested {
		if _, ok := own[id]; !ok {
			return fmt.Errorf("%w: child id=%d", ErrInvalidChildren, id)
		}
	}
	return nil
}

// validateEventDate проверяет, что дата праздника не раньше сегодняшнего дня на площадке
func validateEventDate(eventDate, current time.Time, loc *time.Location) error {
	y, m, d := eventDate.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	today := now.With(current.In(loc)).BeginningOfDay()

	if day.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// guestNotes раскладывает контакты гостя в заметки бронирования
func guestNotes(c *domain.GuestContact, notes *string) *string {
	var b strings.Builder

	b.WriteString("GUEST BOOKING\n")
	fmt.Fprintf(&b, "Name: %s %s\n", c.FirstName, c.LastName)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
	fmt.Fprintf(&b, "Child: %s", c.ChildName)
	if c.ChildBirthDate != "" {
		fmt.Fprintf(&b, " (DOB: %s)", c.ChildBirthDate)
	}
	b.WriteString("\n\n")
	if notes != nil {
		b.WriteString(*notes)
	}

	result := strings.TrimSpace(b.String())
	return &result
}
