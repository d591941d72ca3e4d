package record

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehiclePickup     VehicleType = "pickup"
	VehicleTruck      VehicleType = "truck"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCar, VehicleMotorcycle, VehiclePickup, VehicleTruck:
		return true
	default:
		return false
	}
}

// Label returns the customer-facing Spanish name used in listings.
func (v VehicleType) Label() string {
	switch v {
	case VehicleCar:
		return "Automóvil"
	case VehicleMotorcycle:
		return "Motocicleta"
	case VehiclePickup:
		return "Camioneta"
	case VehicleTruck:
		return "Camión"
	default:
		return string(v)
	}
}

func NewVehicleType(s string) (VehicleType, error) {
	v := VehicleType(s)
	if !v.IsValid() {
		return "", ErrInvalidVehicleType
	}
	return v, nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendiente"
	PaymentPaid    PaymentStatus = "Pagado"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	p := PaymentStatus(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return p, nil
}
