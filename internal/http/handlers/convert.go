package handlers

import (
	"time"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/service/slot"
	"zistino-dispatch/internal/service/zone"
)

const dateLayout = "2006-01-02"

func zoneToResponse(z domain.Zone) zoneResponse {
	return zoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		Path:        z.Path,
		Description: z.Description,
		CenterLat:   z.CenterLat,
		CenterLng:   z.CenterLng,
		RadiusKm:    z.RadiusKm,
		Active:      z.Active,
	}
}

func zonesToResponse(zs []domain.Zone) []zoneResponse {
	out := make([]zoneResponse, 0, len(zs))
	for _, z := range zs {
		out = append(out, zoneToResponse(z))
	}
	return out
}

func (r zoneRequest) toDomain() *domain.Zone {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Zone{
		Name:        r.Name,
		Path:        r.Path,
		Description: r.Description,
		CenterLat:   r.CenterLat,
		CenterLng:   r.CenterLng,
		RadiusKm:    r.RadiusKm,
		Active:      active,
	}
}

func (r zoneUpdateRequest) toDomain() domain.PartialZoneUpdate {
	return domain.PartialZoneUpdate{
		ID:          r.ID,
		Name:        r.Name,
		Path:        r.Path,
		Description: r.Description,
		CenterLat:   r.CenterLat,
		CenterLng:   r.CenterLng,
		RadiusKm:    r.RadiusKm,
		Active:      r.Active,
	}
}

func matchToResponse(m zone.Match) zoneMatchResponse {
	return zoneMatchResponse{
		Zone:       zoneToResponse(m.Zone),
		DistanceKm: m.DistanceKm,
		Contains:   m.Contains,
	}
}

func zoneDriversToResponse(ds []domain.ZoneDriver) []zoneDriverResponse {
	out := make([]zoneDriverResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, zoneDriverResponse{
			ID:        d.ID,
			Name:      d.Name,
			Phone:     d.Phone,
			IsActive:  d.IsActive,
			IsDriver:  d.IsDriver,
			IsDriving: d.IsDriving,
			Priority:  d.Priority,
			Load:      d.Load,
		})
	}
	return out
}

// toDomain assumes the request passed validation, so DeliveryDate parses.
func (r assignDeliveryRequest) toDomain() domain.Order {
	o := domain.Order{
		ID:        r.OrderID,
		Address:   r.Address,
		Phone:     r.Phone,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
	if r.DeliveryDate != nil {
		if d, err := time.Parse(dateLayout, *r.DeliveryDate); err == nil {
			o.DeliveryDate = &d
		}
	}
	return o
}

func assignResultToResponse(res domain.AssignResult) assignDeliveryResponse {
	return assignDeliveryResponse{
		DeliveryID:  res.Delivery.ID,
		OrderID:     res.Delivery.OrderID,
		DriverID:    res.Delivery.DriverID,
		ZoneID:      res.Delivery.ZoneID,
		ZoneName:    res.ZoneName,
		DistanceKm:  res.DistanceKm,
		Status:      string(res.Delivery.Status),
		ScheduledAt: res.ScheduledAt,
		SlotStart:   res.SlotStart,
		SlotEnd:     res.SlotEnd,
		SlotLabel:   res.SlotLabel,
	}
}

func statusResultToResponse(res domain.StatusResult) statusResponse {
	return statusResponse{
		OrderID:  res.OrderID,
		DriverID: res.DriverID,
		Previous: string(res.Previous),
		Status:   string(res.Status),
	}
}

func selectionToResponse(sel slot.Selection) slotResponse {
	return slotResponse{
		ScheduledAt: sel.ScheduledAt,
		SlotStart:   sel.Window.StartHour,
		SlotEnd:     sel.Window.EndHour,
		SlotLabel:   sel.Label,
		RolledOver:  sel.RolledOver,
	}
}
