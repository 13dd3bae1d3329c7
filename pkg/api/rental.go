package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"airbnbes/pkg/booking"
)

// Rental is a rental request as the backend returns it. State carries the
// backend's status code; Status maps it onto the canonical set.
type Rental struct {
	ID           string  `json:"id"`
	PropertyID   string  `json:"propertyId"`
	PropertyName string  `json:"propertyName"`
	TenantID     string  `json:"tenantId"`
	TenantName   string  `json:"tenantName"`
	OwnerID      string  `json:"ownerId"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	TotalPrice   float64 `json:"totalPrice"`
	State        string  `json:"state"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// Status returns the canonical status of the rental.
func (r Rental) Status() booking.Status {
	return booking.StatusFromAPI(r.State)
}

// Reservation converts the rental into the shape the availability checker
// consumes.
func (r Rental) Reservation() (booking.Reservation, error) {
	start, err := booking.ParseDate(r.StartDate)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("rental %s: parse start date: %w", r.ID, err)
	}
	end, err := booking.ParseDate(r.EndDate)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("rental %s: parse end date: %w", r.ID, err)
	}
	return booking.Reservation{Start: start, End: end, Status: r.Status()}, nil
}

// CreateRentalRequest matches POST /rental. Dates use the YYYY-MM-DD wire
// format. The request is transient: conflict resolution and pricing happen
// server-side.
type CreateRentalRequest struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// CreateRental submits a rental request for the authenticated tenant.
func (c *Client) CreateRental(ctx context.Context, req CreateRentalRequest) (Rental, error) {
	var rental Rental
	if err := c.post(ctx, "/rental", req, &rental); err != nil {
		return Rental{}, err
	}
	return rental, nil
}

// ConfirmRental approves a pending request as the property owner.
func (c *Client) ConfirmRental(ctx context.Context, rentalID string) (Rental, error) {
	return c.updateRental(ctx, rentalID, "owner/confirm", nil, nil)
}

// DenyRental refuses a pending request as the property owner.
func (c *Client) DenyRental(ctx context.Context, rentalID string) (Rental, error) {
	return c.updateRental(ctx, rentalID, "owner/deny", nil, nil)
}

// CancelRentalAsOwner cancels a confirmed rental as the property owner. A
// non-empty cancelDate asks the backend to cancel from that date onward.
func (c *Client) CancelRentalAsOwner(ctx context.Context, rentalID, cancelDate string) (Rental, error) {
	var query url.Values
	if cancelDate != "" {
		query = url.Values{"cancelDate": {cancelDate}}
	}
	return c.updateRental(ctx, rentalID, "owner/cancel", query, nil)
}

// CancelRentalAsTenant cancels the tenant's own rental, recording a reason.
func (c *Client) CancelRentalAsTenant(ctx context.Context, rentalID, reason string) (Rental, error) {
	payload := map[string]string{"reason": reason}
	return c.updateRental(ctx, rentalID, "tenant/cancel", nil, payload)
}

// DeleteRental removes a rental record entirely.
func (c *Client) DeleteRental(ctx context.Context, rentalID string) error {
	return c.do(ctx, http.MethodDelete, "/rental/"+url.PathEscape(rentalID), nil, nil, nil)
}

// Rentals lists every rental, optionally narrowed to one property owner.
func (c *Client) Rentals(ctx context.Context, ownerID string) ([]Rental, error) {
	var query url.Values
	if ownerID != "" {
		query = url.Values{"ownerId": {ownerID}}
	}
	var rentals []Rental
	if err := c.get(ctx, "/rental", query, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// RentalsByProperty lists the rentals booked against one property.
func (c *Client) RentalsByProperty(ctx context.Context, propertyID string) ([]Rental, error) {
	var rentals []Rental
	if err := c.get(ctx, "/rental/properties/"+url.PathEscape(propertyID), nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// RentalsByTenant lists the rentals requested by one tenant.
func (c *Client) RentalsByTenant(ctx context.Context, tenantID string) ([]Rental, error) {
	var rentals []Rental
	if err := c.get(ctx, "/rental/tenants/"+url.PathEscape(tenantID), nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (c *Client) updateRental(ctx context.Context, rentalID, action string, query url.Values, payload any) (Rental, error) {
	var rental Rental
	path := "/rental/" + url.PathEscape(rentalID) + "/" + action
	if err := c.put(ctx, path, query, payload, &rental); err != nil {
		return Rental{}, err
	}
	return rental, nil
}
