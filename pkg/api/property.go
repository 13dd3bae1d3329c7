package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Property is a rentable listing as the backend returns it.
type Property struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	DailyRate   float64 `json:"dailyRate"`
	Price       float64 `json:"price"`
	MaxGuests   int     `json:"maxGuests"`
	OwnerID     string  `json:"ownerId"`
	OwnerName   string  `json:"ownerName"`
}

// PropertyFilters narrows a listing search. Zero-value fields are ignored;
// the price bounds only apply when both are set.
type PropertyFilters struct {
	Location string
	MinPrice *float64
	MaxPrice *float64
}

// Properties returns every listing.
func (c *Client) Properties(ctx context.Context) ([]Property, error) {
	var props []Property
	if err := c.get(ctx, "/property", nil, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// PropertyByID returns a single listing.
func (c *Client) PropertyByID(ctx context.Context, id string) (Property, error) {
	var prop Property
	if err := c.get(ctx, "/property/"+url.PathEscape(id), nil, &prop); err != nil {
		return Property{}, err
	}
	return prop, nil
}

// PropertiesByLocation returns the listings matching a location search.
func (c *Client) PropertiesByLocation(ctx context.Context, location string) ([]Property, error) {
	query := url.Values{"location": {location}}
	var props []Property
	if err := c.get(ctx, "/property/location", query, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// PropertiesByPriceRange returns the listings priced within [min, max].
func (c *Client) PropertiesByPriceRange(ctx context.Context, min, max float64) ([]Property, error) {
	query := url.Values{
		"min": {strconv.FormatFloat(min, 'f', -1, 64)},
		"max": {strconv.FormatFloat(max, 'f', -1, 64)},
	}
	var props []Property
	if err := c.get(ctx, "/property/price-range", query, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// FilterProperties combines the search endpoints. Location plus a price
// range fetches by location and narrows on price client-side; either filter
// alone uses its dedicated endpoint; no filter lists everything.
func (c *Client) FilterProperties(ctx context.Context, filters PropertyFilters) ([]Property, error) {
	priced := filters.MinPrice != nil && filters.MaxPrice != nil

	switch {
	case filters.Location != "" && priced:
		props, err := c.PropertiesByLocation(ctx, filters.Location)
		if err != nil {
			return nil, fmt.Errorf("filter by location: %w", err)
		}
		matched := make([]Property, 0, len(props))
		for _, p := range props {
			if p.Price >= *filters.MinPrice && p.Price <= *filters.MaxPrice {
				matched = append(matched, p)
			}
		}
		return matched, nil
	case filters.Location != "":
		return c.PropertiesByLocation(ctx, filters.Location)
	case priced:
		return c.PropertiesByPriceRange(ctx, *filters.MinPrice, *filters.MaxPrice)
	default:
		return c.Properties(ctx)
	}
}
