package circuit

// Role classifies a net as a primary input, primary output, or an internal
// signal. A net can be both PrimaryOutput and internal-driven (its driver
// gate feeds both a PO and other gates); Role records only whether it is
// externally observable/controllable, driver/fanout is tracked separately.
type Role int

const (
	Internal Role = iota
	PrimaryInput
	PrimaryOutput
)

// Net is a single wire, identified by an opaque label. Branches are not a
// separate entity: a net with more than one entry in Consumers is a
// fanout point, and every consumer shares the same Net identity.
type Net struct {
	ID       int
	Label    string
	Role     Role
	Driver   *Gate   // nil for a primary input
	Consumers []*Gate // gates that read this net as an input
}
