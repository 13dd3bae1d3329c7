package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/assert"

	"airbnbes/pkg/booking"
)

func TestCreateRental(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rental", r.URL.Path)

		var req CreateRentalRequest
		assert.Equal(t, nil, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "p1", req.PropertyID)
		assert.Equal(t, "2024-06-16", req.StartDate)

		json.NewEncoder(w).Encode(Rental{ID: "r1", PropertyID: "p1", State: "PENDING"})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	assert.Equal(t, nil, err)

	rental, err := c.CreateRental(context.Background(), CreateRentalRequest{
		PropertyID: "p1",
		StartDate:  "2024-06-16",
		EndDate:    "2024-06-18",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "r1", rental.ID)
	assert.Equal(t, booking.StatusPending, rental.Status())
}

func TestOwnerRentalActions(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(Rental{ID: "r1", State: "CONFIRMED"})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	assert.Equal(t, nil, err)

	_, err = c.ConfirmRental(context.Background(), "r1")
	assert.Equal(t, nil, err)
	assert.Equal(t, "/rental/r1/owner/confirm", gotPath)

	_, err = c.DenyRental(context.Background(), "r1")
	assert.Equal(t, nil, err)
	assert.Equal(t, "/rental/r1/owner/deny", gotPath)

	_, err = c.CancelRentalAsOwner(context.Background(), "r1", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, "/rental/r1/owner/cancel", gotPath)
	assert.Equal(t, "", gotQuery)

	_, err = c.CancelRentalAsOwner(context.Background(), "r1", "2024-06-20")
	assert.Equal(t, nil, err)
	assert.Equal(t, "cancelDate=2024-06-20", gotQuery)
}

func TestCancelRentalAsTenant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rental/r1/tenant/cancel", r.URL.Path)

		var body map[string]string
		assert.Equal(t, nil, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "plans changed", body["reason"])

		json.NewEncoder(w).Encode(Rental{ID: "r1", State: "CANCELLED"})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	assert.Equal(t, nil, err)

	rental, err := c.CancelRentalAsTenant(context.Background(), "r1", "plans changed")
	assert.Equal(t, nil, err)
	assert.Equal(t, booking.StatusCancelled, rental.Status())
}

func TestRentalsOwnerFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	assert.Equal(t, nil, err)

	_, err = c.Rentals(context.Background(), "")
	assert.Equal(t, nil, err)
	assert.Equal(t, "", gotQuery)

	_, err = c.Rentals(context.Background(), "owner-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, "ownerId=owner-1", gotQuery)
}

func TestRentalReservation(t *testing.T) {
	r := Rental{ID: "r1", StartDate: "2024-06-10", EndDate: "2024-06-15", State: "CONFIRMED"}

	res, err := r.Reservation()
	assert.Equal(t, nil, err)
	assert.Equal(t, booking.StatusConfirmed, res.Status)
	assert.Equal(t, "2024-06-10", res.Start.Format(booking.DateLayout))
	assert.Equal(t, "2024-06-15", res.End.Format(booking.DateLayout))

	_, err = Rental{ID: "r2", StartDate: "garbage", EndDate: "2024-06-15"}.Reservation()
	assert.Assert(t, err != nil)
}
