package domain

// Driver is the user side of a UserZone link.
type Driver struct {
	ID        int64
	Name      string
	Phone     string
	IsActive  bool
	IsDriver  bool
	IsDriving bool
}

// Eligible reports whether the driver may receive new deliveries.
func (d Driver) Eligible() bool {
	return d.IsActive && d.IsDriver && d.IsDriving
}
