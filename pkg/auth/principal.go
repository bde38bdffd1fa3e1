package auth

// Kind is the type of account a principal authenticated as.
type Kind string

const (
	KindUser Kind = "user"
	KindHost Kind = "host"
)

func (k Kind) Valid() bool {
	return k == KindUser || k == KindHost
}

// Capability is a single permission a principal may hold.
type Capability string

const (
	// CapBook allows creating bookings.
	CapBook Capability = "book"
	// CapManageListings allows creating and deleting hostings.
	CapManageListings Capability = "manage_listings"
)

var kindCapabilities = map[Kind][]Capability{
	KindUser: {CapBook},
	KindHost: {CapManageListings},
}

// Principal is an authenticated actor resolved from a bearer token.
type Principal struct {
	ID    string
	Email string
	Kind  Kind
}

// Can reports whether p holds capability c.
func (p Principal) Can(c Capability) bool {
	for _, have := range kindCapabilities[p.Kind] {
		if have == c {
			return true
		}
	}
	return false
}
