package delivery_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/ports/deliverytx"
)

// memStore is an in-memory delivery store. WithTx holds a single mutex for the whole
// transaction, which stands in for the driver row locks taken by the SQL repository.
type memStore struct {
	mu         sync.Mutex
	zones      []domain.Zone
	drivers    map[int64]domain.Driver
	links      []domain.UserZone
	deliveries []domain.Delivery
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{drivers: make(map[int64]domain.Driver)}
}

func (m *memStore) addZone(z domain.Zone) {
	m.zones = append(m.zones, z)
}

func (m *memStore) addDriver(d domain.Driver, zoneID int64, priority int) {
	m.drivers[d.ID] = d
	m.links = append(m.links, domain.UserZone{
		ID:       int64(len(m.links) + 1),
		UserID:   d.ID,
		ZoneID:   zoneID,
		Priority: priority,
	})
}

func (m *memStore) seedDeliveries(driverID int64, status domain.DeliveryStatus, n int) {
	for i := 0; i < n; i++ {
		m.nextID++
		m.deliveries = append(m.deliveries, domain.Delivery{
			ID:       m.nextID,
			DriverID: driverID,
			OrderID:  fmt.Sprintf("seed-%d", m.nextID),
			Status:   status,
		})
	}
}

func (m *memStore) loads() map[int64]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int64]int)
	for _, d := range m.deliveries {
		if d.Status.Active() {
			out[d.DriverID]++
		}
	}
	return out
}

func (m *memStore) WithTx(_ context.Context, fn func(tx deliverytx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := append([]domain.Delivery(nil), m.deliveries...)
	nextID := m.nextID
	if err := fn(&memTx{m: m}); err != nil {
		m.deliveries = snapshot
		m.nextID = nextID
		return err
	}
	return nil
}

type memTx struct{ m *memStore }

func (t *memTx) ListActiveZonesWithCenter(context.Context) ([]domain.Zone, error) {
	out := make([]domain.Zone, 0, len(t.m.zones))
	for _, z := range t.m.zones {
		if z.Active && z.HasCenter() {
			out = append(out, z)
		}
	}
	return out, nil
}

func (t *memTx) ListEligibleDriversForUpdate(_ context.Context, zoneID int64) ([]domain.UserZone, error) {
	var out []domain.UserZone
	for _, l := range t.m.links {
		if l.ZoneID == zoneID && t.m.drivers[l.UserID].Eligible() {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (t *memTx) CountActiveDeliveries(_ context.Context, driverID int64) (int, error) {
	n := 0
	for _, d := range t.m.deliveries {
		if d.DriverID == driverID && d.Status.Active() {
			n++
		}
	}
	return n, nil
}

func (t *memTx) GetByOrderIDForUpdate(_ context.Context, orderID string) (*domain.Delivery, error) {
	var latest *domain.Delivery
	for i := range t.m.deliveries {
		d := t.m.deliveries[i]
		if d.OrderID == orderID && (latest == nil || d.ID > latest.ID) {
			latest = &d
		}
	}
	return latest, nil
}

func (t *memTx) InsertDelivery(_ context.Context, d *domain.Delivery) error {
	t.m.nextID++
	d.ID = t.m.nextID
	t.m.deliveries = append(t.m.deliveries, *d)
	return nil
}

func (t *memTx) UpdateDeliveryStatus(_ context.Context, id int64, status domain.DeliveryStatus) error {
	for i := range t.m.deliveries {
		if t.m.deliveries[i].ID == id {
			t.m.deliveries[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("delivery %d not found", id)
}
